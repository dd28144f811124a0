package access

import (
	"testing"

	"github.com/go-leo/gox/errorx"
	"github.com/go-leo/patterns/chain"
	"github.com/kinbiko/jsonassert"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAccessChain(t *testing.T) {
	Convey("Given the chain [AuthHandler, PermissionHandler]", t, func() {
		c := NewChain()
		So(c.Len(), ShouldEqual, 2)

		Convey("an admin user is granted", func() {
			result, ok := c.Handle(Request{"user": "egor", "role": "admin"})
			So(ok, ShouldBeTrue)
			So(result, ShouldEqual, AccessGranted)
		})

		Convey("a request without user is unauthorized", func() {
			result, ok := c.Handle(Request{"role": "admin"})
			So(ok, ShouldBeTrue)
			So(result, ShouldEqual, Unauthorized)
		})

		Convey("a request with an empty user is unauthorized", func() {
			result, _ := c.Handle(Request{"user": "", "role": "admin"})
			So(result, ShouldEqual, Unauthorized)
		})

		Convey("a guest is forbidden", func() {
			result, ok := c.Handle(Request{"user": "egor", "role": "guest"})
			So(ok, ShouldBeTrue)
			So(result, ShouldEqual, Forbidden)
		})

		Convey("a blank user decoded from JSON is unauthorized", func() {
			for _, data := range []string{`{"user":0}`, `{"user":false}`, `{"user":[]}`, `{"user":{}}`, `{"user":null}`} {
				req, err := ParseRequest([]byte(data))
				So(err, ShouldBeNil)
				result, _ := c.Handle(req)
				So(result, ShouldEqual, Unauthorized)
			}
		})

		Convey("a blank user of any Go type is unauthorized", func() {
			for _, user := range []any{int64(0), uint8(0), float32(0), []string{}, map[string]string{}, [0]int{}, (*string)(nil)} {
				result, _ := c.Handle(Request{"user": user, "role": "admin"})
				So(result, ShouldEqual, Unauthorized)
			}
		})

		Convey("a non blank user of any Go type is authenticated", func() {
			for _, user := range []any{int64(7), true, []string{"egor"}, map[string]string{"name": "egor"}} {
				result, _ := c.Handle(Request{"user": user, "role": "admin"})
				So(result, ShouldEqual, AccessGranted)
			}
		})

		Convey("a user without role is forbidden", func() {
			result, _ := c.Handle(Request{"user": "egor"})
			So(result, ShouldEqual, Forbidden)
		})

		Convey("the request is not mutated", func() {
			req := Request{"user": "egor", "role": "guest"}
			c.Handle(req)
			So(req, ShouldResemble, Request{"user": "egor", "role": "guest"})
		})
	})
}

func TestAccessChainStopsAtAuth(t *testing.T) {
	Convey("Given an observed access chain", t, func() {
		var visits []chain.Visit
		c := NewChain(chain.WithName("access"), chain.WithObserver(func(v chain.Visit) {
			visits = append(visits, v)
		}))

		Convey("an anonymous request never reaches PermissionHandler", func() {
			c.Handle(Request{"role": "admin"})
			So(visits, ShouldHaveLength, 1)
			So(visits[0].Index, ShouldEqual, 0)
			So(visits[0].Terminal, ShouldBeTrue)
		})

		Convey("an authenticated request visits both handlers", func() {
			c.Handle(Request{"user": "egor", "role": "admin"})
			So(visits, ShouldHaveLength, 2)
			So(visits[0].Terminal, ShouldBeFalse)
			So(visits[1].Result, ShouldResemble, AccessGranted)
		})
	})
}

func TestParseRequest(t *testing.T) {
	Convey("ParseRequest", t, func() {
		Convey("decodes a JSON object", func() {
			req, err := ParseRequest([]byte(`{"user":"egor","role":"admin"}`))
			So(err, ShouldBeNil)
			So(req.Text(UserField), ShouldEqual, "egor")
			So(req.Text(RoleField), ShouldEqual, AdminRole)
		})

		Convey("rejects anything else", func() {
			_, err := ParseRequest([]byte(`["egor"]`))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestVerdictJSON(t *testing.T) {
	ja := jsonassert.New(t)
	c := NewChain()

	granted := errorx.Ignore(Check(c, Request{"user": "egor", "role": "admin"}).JSON())
	ja.Assertf(string(granted), `{"result": "Access granted", "handled": true}`)

	forbidden := errorx.Ignore(Check(c, Request{"user": "egor", "role": "guest"}).JSON())
	ja.Assertf(string(forbidden), `{"result": "%s", "handled": true}`, Forbidden)

	unhandled := errorx.Ignore(Check(chain.New(AuthHandler()), Request{"user": "egor"}).JSON())
	ja.Assertf(string(unhandled), `{"result": "", "handled": false}`)
}
