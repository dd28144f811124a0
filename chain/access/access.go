// Package access is the authorization chain: a request must carry a user,
// then the user must be an admin.
package access

import (
	"fmt"
	"reflect"

	"github.com/go-leo/patterns/chain"
	"github.com/go-leo/patterns/specification"
	jsoniter "github.com/json-iterator/go"
)

// Result is the outcome of an access check.
type Result string

const (
	Unauthorized  Result = "Unauthorized"
	Forbidden     Result = "Forbidden"
	AccessGranted Result = "Access granted"
)

const (
	UserField = "user"
	RoleField = "role"

	AdminRole = "admin"
)

// Request maps field names to values. Handlers only read it.
type Request map[string]any

// Get returns the value of field, nil when absent.
func (r Request) Get(field string) any {
	return r[field]
}

// Text returns the value of field when it is a string.
func (r Request) Text(field string) string {
	s, _ := r.Get(field).(string)
	return s
}

// ParseRequest decodes a JSON object into a Request.
func ParseRequest(data []byte) (Request, error) {
	var req Request
	if err := jsoniter.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("access: parse request: %w", err)
	}
	return req, nil
}

// HasUser is satisfied by requests carrying a user that is neither missing nor blank:
// nil, false, any zero number and empty strings, maps, slices or arrays are blank.
var HasUser = specification.New(func(req Request) bool {
	return !isBlank(req.Get(UserField))
})

// IsAdmin is satisfied by requests whose role is admin.
var IsAdmin = specification.New(func(req Request) bool {
	return req.Text(RoleField) == AdminRole
})

// AuthHandler rejects anonymous requests, the others go on to the next handler.
func AuthHandler() chain.Rule[Request, Result] {
	return chain.Require(HasUser, Unauthorized)
}

// PermissionHandler grants admins and forbids everybody else. It never forwards.
func PermissionHandler() chain.Rule[Request, Result] {
	return chain.RuleFunc[Request, Result](func(req Request) chain.Decision[Result] {
		if !IsAdmin.IsSatisfiedBy(req) {
			return chain.Reject(Forbidden)
		}
		return chain.Resolve(AccessGranted)
	})
}

// NewChain returns the chain [AuthHandler, PermissionHandler].
func NewChain(opts ...chain.Option) *chain.Link[Request, Result] {
	return chain.New(AuthHandler(), PermissionHandler()).With(opts...)
}

// Verdict is a request checked against a chain.
type Verdict struct {
	Result  Result `json:"result"`
	Handled bool   `json:"handled"`
}

// Check runs req through h.
func Check(h chain.Handler[Request, Result], req Request) Verdict {
	result, ok := h.Handle(req)
	return Verdict{Result: result, Handled: ok}
}

// JSON encodes the verdict.
func (v Verdict) JSON() ([]byte, error) {
	return jsoniter.Marshal(v)
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	default:
		return rv.IsZero()
	}
}
