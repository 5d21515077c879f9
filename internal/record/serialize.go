package record

import "github.com/TomasB/geolookup/internal/value"

type integer interface {
	~uint16 | ~uint32
}

func optString(p *string) value.Value {
	if p == nil {
		return value.Null()
	}
	return value.String(*p)
}

func optBool(p *bool) value.Value {
	if p == nil {
		return value.Null()
	}
	return value.Bool(*p)
}

func optInt[T integer](p *T) value.Value {
	if p == nil {
		return value.Null()
	}
	return value.Int(int64(*p))
}

func optFloat(p *float64) value.Value {
	if p == nil {
		return value.Null()
	}
	return value.Float(*p)
}

// optStruct serializes a nested sub-record, or null when it is absent.
func optStruct[T any](p *T, fn func(*T) value.Value) value.Value {
	if p == nil {
		return value.Null()
	}
	return fn(p)
}

func cityInfo(c *CityInfo) value.Value {
	return value.Map(
		value.F("geoname_id", optInt(c.GeoNameID)),
		value.F("names", value.Names(c.Names)),
	)
}

func continent(c *Continent) value.Value {
	return value.Map(
		value.F("code", optString(c.Code)),
		value.F("geoname_id", optInt(c.GeoNameID)),
		value.F("names", value.Names(c.Names)),
	)
}

func countryInfo(c *CountryInfo) value.Value {
	return value.Map(
		value.F("names", value.Names(c.Names)),
		value.F("is_in_european_union", optBool(c.IsInEuropeanUnion)),
		value.F("iso_code", optString(c.IsoCode)),
		value.F("geoname_id", optInt(c.GeoNameID)),
	)
}

func representedCountry(c *RepresentedCountry) value.Value {
	return value.Map(
		value.F("names", value.Names(c.Names)),
		value.F("iso_code", optString(c.IsoCode)),
		value.F("geoname_id", optInt(c.GeoNameID)),
		value.F("type", optString(c.Type)),
	)
}

func location(l *Location) value.Value {
	return value.Map(
		value.F("latitude", optFloat(l.Latitude)),
		value.F("longitude", optFloat(l.Longitude)),
		value.F("metro_code", optInt(l.MetroCode)),
		value.F("time_zone", optString(l.TimeZone)),
		value.F("accuracy_radius", optInt(l.AccuracyRadius)),
	)
}

func postal(p *Postal) value.Value {
	return value.Map(value.F("code", optString(p.Code)))
}

func subdivision(s *Subdivision) value.Value {
	return value.Map(
		value.F("geoname_id", optInt(s.GeoNameID)),
		value.F("iso_code", optString(s.IsoCode)),
		value.F("names", value.Names(s.Names)),
	)
}

// subdivisions keeps source order; an absent list is an empty sequence.
func subdivisions(list []Subdivision) value.Value {
	items := make([]value.Value, 0, len(list))
	for i := range list {
		items = append(items, subdivision(&list[i]))
	}
	return value.Seq(items...)
}

func traits(t *Traits) value.Value {
	return value.Map(
		value.F("is_anonymous_proxy", optBool(t.IsAnonymousProxy)),
		value.F("is_satellite_provider", optBool(t.IsSatelliteProvider)),
		value.F("is_anycast", optBool(t.IsAnycast)),
	)
}

// SerializeCountry converts a Country record.
func SerializeCountry(r *Country) value.Value {
	return value.Map(
		value.F("country", optStruct(r.Country, countryInfo)),
		value.F("continent", optStruct(r.Continent, continent)),
		value.F("registered_country", optStruct(r.RegisteredCountry, countryInfo)),
		value.F("represented_country", optStruct(r.RepresentedCountry, representedCountry)),
		value.F("traits", optStruct(r.Traits, traits)),
	)
}

// SerializeCity converts a City record.
func SerializeCity(r *City) value.Value {
	return value.Map(
		value.F("city", optStruct(r.City, cityInfo)),
		value.F("continent", optStruct(r.Continent, continent)),
		value.F("country", optStruct(r.Country, countryInfo)),
		value.F("location", optStruct(r.Location, location)),
		value.F("postal", optStruct(r.Postal, postal)),
		value.F("registered_country", optStruct(r.RegisteredCountry, countryInfo)),
		value.F("represented_country", optStruct(r.RepresentedCountry, representedCountry)),
		value.F("subdivisions", subdivisions(r.Subdivisions)),
		value.F("traits", optStruct(r.Traits, traits)),
	)
}

func SerializeAnonymousIP(r *AnonymousIP) value.Value {
	return value.Map(
		value.F("is_anonymous", optBool(r.IsAnonymous)),
		value.F("is_anonymous_vpn", optBool(r.IsAnonymousVPN)),
		value.F("is_hosting_provider", optBool(r.IsHostingProvider)),
		value.F("is_public_proxy", optBool(r.IsPublicProxy)),
		value.F("is_tor_exit_node", optBool(r.IsTorExitNode)),
		value.F("is_residential_proxy", optBool(r.IsResidentialProxy)),
	)
}

func SerializeASN(r *ASN) value.Value {
	return value.Map(
		value.F("autonomous_system_number", optInt(r.AutonomousSystemNumber)),
		value.F("autonomous_system_organization", optString(r.AutonomousSystemOrganization)),
	)
}

func SerializeConnectionType(r *ConnectionType) value.Value {
	return value.Map(value.F("connection_type", optString(r.ConnectionType)))
}

func SerializeDensityIncome(r *DensityIncome) value.Value {
	return value.Map(
		value.F("population_density", optInt(r.PopulationDensity)),
		value.F("average_income", optInt(r.AverageIncome)),
	)
}

func SerializeDomain(r *Domain) value.Value {
	return value.Map(value.F("domain", optString(r.Domain)))
}

func SerializeISP(r *ISP) value.Value {
	return value.Map(
		value.F("autonomous_system_number", optInt(r.AutonomousSystemNumber)),
		value.F("autonomous_system_organization", optString(r.AutonomousSystemOrganization)),
		value.F("isp", optString(r.ISP)),
		value.F("organization", optString(r.Organization)),
		value.F("mobile_country_code", optString(r.MobileCountryCode)),
		value.F("mobile_network_code", optString(r.MobileNetworkCode)),
	)
}
