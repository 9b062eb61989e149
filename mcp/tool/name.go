package tool

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/google/uuid"
	"github.com/ucmcp/ucmcp/internal/syncmap"
)

// maxWireName is the identifier length cap imposed by the transport.
const maxWireName = 64

// ErrCollision reports two distinct catalog functions mapping to the same
// wire name. The caller drops the later-discovered function from listings.
var ErrCollision = errors.New("wire name collision")

// FunctionName is the fully-qualified catalog.schema.function triple.
type FunctionName struct {
	Catalog string
	Schema  string
	Name    string
}

// Full returns the dotted three-part name used by the catalog API.
func (n FunctionName) Full() string {
	return n.Catalog + "." + n.Schema + "." + n.Name
}

// ParseFunctionName parses a raw dotted three-part name. It returns false for
// anything that is not exactly catalog.schema.function with non-empty parts.
func ParseFunctionName(raw string) (FunctionName, bool) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return FunctionName{}, false
	}
	return FunctionName{Catalog: parts[0], Schema: parts[1], Name: parts[2]}, true
}

// WireName is the pure encode transform: it maps a catalog function's local
// name to a transport-safe tool identifier. Names that are already safe pass
// through unchanged so that well-behaved catalogs keep their natural tool
// names. The transform is deterministic, making Encode idempotent.
func WireName(function string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, function)
	if sanitized == "" {
		sanitized = "_"
	}
	if len(sanitized) <= maxWireName {
		return sanitized
	}
	// Too long for the transport: keep a recognizable prefix and disambiguate
	// with a hash of the original name.
	h := fnv.New32a()
	_, _ = h.Write([]byte(function))
	suffix := fmt.Sprintf("%08x", h.Sum32())
	return sanitized[:maxWireName-len(suffix)-1] + "_" + suffix
}

// Codec owns the session-scoped wire-name registry. Every name handed out in
// a listing response stays resolvable for the process lifetime; entries are
// never evicted.
type Codec struct {
	session string
	mapping *syncmap.Map[FunctionName]
}

// NewCodec returns an empty codec with a fresh session identifier.
func NewCodec() *Codec {
	return &Codec{
		session: uuid.New().String(),
		mapping: syncmap.NewRegistry[FunctionName](),
	}
}

// Session returns the codec's session identifier, used for log correlation.
func (c *Codec) Session() string { return c.session }

// Size returns the number of registered wire names.
func (c *Codec) Size() int { return c.mapping.Len() }

// Encode maps a fully-qualified function to its wire name and records the
// reverse mapping. Encoding the same triple twice yields the same wire name.
// A wire name already claimed by a different function yields ErrCollision.
func (c *Codec) Encode(catalog, schema, function string) (string, error) {
	wire := WireName(function)
	fn := FunctionName{Catalog: catalog, Schema: schema, Name: function}
	existing, stored := c.mapping.SetIfAbsent(wire, fn)
	if !stored && existing != fn {
		return "", fmt.Errorf("%w: %s and %s both encode to %q", ErrCollision, existing.Full(), fn.Full(), wire)
	}
	return wire, nil
}

// Decode resolves a wire name back to its fully-qualified function. It only
// knows names previously handed out by Encode within this session.
func (c *Codec) Decode(wire string) (FunctionName, bool) {
	return c.mapping.Get(wire)
}
