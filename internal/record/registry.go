package record

import (
	"fmt"
	"net"

	"github.com/TomasB/geolookup/internal/data"
	"github.com/TomasB/geolookup/internal/value"
)

// LookupFunc decodes the record for ip from db and serializes it.
type LookupFunc func(db data.Database, ip net.IP) (value.Value, error)

type entry struct {
	name   string
	lookup LookupFunc
}

// decoder binds a record shape to its serializer. A missing entry decodes to
// the zero record, so every field comes out null.
func decoder[T any](serialize func(*T) value.Value) LookupFunc {
	return func(db data.Database, ip net.IP) (value.Value, error) {
		var rec T
		if err := db.Lookup(ip, &rec); err != nil {
			return value.Null(), err
		}
		return serialize(&rec), nil
	}
}

var registry = [typeCount]entry{
	TypeAnonymousIP:    {name: "AnonymousIp", lookup: decoder(SerializeAnonymousIP)},
	TypeASN:            {name: "Asn", lookup: decoder(SerializeASN)},
	TypeCity:           {name: "City", lookup: decoder(SerializeCity)},
	TypeConnectionType: {name: "ConnectionType", lookup: decoder(SerializeConnectionType)},
	TypeCountry:        {name: "Country", lookup: decoder(SerializeCountry)},
	TypeDensityIncome:  {name: "DensityIncome", lookup: decoder(SerializeDensityIncome)},
	TypeDomain:         {name: "Domain", lookup: decoder(SerializeDomain)},
	TypeISP:            {name: "Isp", lookup: decoder(SerializeISP)},
}

func init() {
	for i, e := range registry {
		if e.name == "" || e.lookup == nil {
			panic(fmt.Sprintf("record: type %d has no registry entry", i))
		}
	}
}

// Lookup returns the registered lookup for t. It panics for values outside
// the enumeration; callers obtain t from ParseType.
func (t Type) Lookup() LookupFunc {
	if !t.Valid() {
		panic(fmt.Sprintf("record: no registry entry for %d", int(t)))
	}
	return registry[t].lookup
}
