package scene

import (
	"encoding/binary"
	"math"

	"github.com/google/uuid"

	"github.com/chazu/hgeom/pkg/geometry"
)

// namespace scopes every ObjectID generated by this package.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/chazu/hgeom/scene"))

// ObjectID identifies a construct by its content. Two constructs with the
// same kind, name and normalized vertices share an ObjectID.
type ObjectID uuid.UUID

// NewObjectID derives the identifier of a construct.
func NewObjectID(kind Kind, name string, vertices []geometry.Vertex3[float64]) ObjectID {
	buf := make([]byte, 0, len(name)+2+len(vertices)*24)
	buf = append(buf, byte(kind))
	buf = append(buf, name...)
	buf = append(buf, 0)
	for _, v := range vertices {
		p := v.Position()
		for _, c := range p {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(c))
		}
	}
	return ObjectID(uuid.NewSHA1(namespace, buf))
}

func (id ObjectID) String() string { return uuid.UUID(id).String() }

// Short returns the first 8 hex digits, for log and error messages.
func (id ObjectID) Short() string { return id.String()[:8] }

// IsZero reports whether id is the zero value.
func (id ObjectID) IsZero() bool { return id == ObjectID{} }
