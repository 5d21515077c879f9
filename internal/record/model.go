package record

// Pointer fields are nil when the database entry lacks the key; name tables
// are nil when absent.

type Names map[string]string

type CityInfo struct {
	GeoNameID *uint32 `maxminddb:"geoname_id"`
	Names     Names   `maxminddb:"names"`
}

type Continent struct {
	Code      *string `maxminddb:"code"`
	GeoNameID *uint32 `maxminddb:"geoname_id"`
	Names     Names   `maxminddb:"names"`
}

type CountryInfo struct {
	Names             Names   `maxminddb:"names"`
	IsInEuropeanUnion *bool   `maxminddb:"is_in_european_union"`
	IsoCode           *string `maxminddb:"iso_code"`
	GeoNameID         *uint32 `maxminddb:"geoname_id"`
}

type RepresentedCountry struct {
	Names     Names   `maxminddb:"names"`
	IsoCode   *string `maxminddb:"iso_code"`
	GeoNameID *uint32 `maxminddb:"geoname_id"`
	Type      *string `maxminddb:"type"`
}

type Location struct {
	Latitude       *float64 `maxminddb:"latitude"`
	Longitude      *float64 `maxminddb:"longitude"`
	MetroCode      *uint16  `maxminddb:"metro_code"`
	TimeZone       *string  `maxminddb:"time_zone"`
	AccuracyRadius *uint16  `maxminddb:"accuracy_radius"`
}

type Postal struct {
	Code *string `maxminddb:"code"`
}

type Subdivision struct {
	GeoNameID *uint32 `maxminddb:"geoname_id"`
	IsoCode   *string `maxminddb:"iso_code"`
	Names     Names   `maxminddb:"names"`
}

type Traits struct {
	IsAnonymousProxy    *bool `maxminddb:"is_anonymous_proxy"`
	IsSatelliteProvider *bool `maxminddb:"is_satellite_provider"`
	IsAnycast           *bool `maxminddb:"is_anycast"`
}

// Country is the GeoIP2/GeoLite2 Country record.
type Country struct {
	Country            *CountryInfo        `maxminddb:"country"`
	Continent          *Continent          `maxminddb:"continent"`
	RegisteredCountry  *CountryInfo        `maxminddb:"registered_country"`
	RepresentedCountry *RepresentedCountry `maxminddb:"represented_country"`
	Traits             *Traits             `maxminddb:"traits"`
}

// City is the GeoIP2/GeoLite2 City record.
type City struct {
	City               *CityInfo           `maxminddb:"city"`
	Continent          *Continent          `maxminddb:"continent"`
	Country            *CountryInfo        `maxminddb:"country"`
	Location           *Location           `maxminddb:"location"`
	Postal             *Postal             `maxminddb:"postal"`
	RegisteredCountry  *CountryInfo        `maxminddb:"registered_country"`
	RepresentedCountry *RepresentedCountry `maxminddb:"represented_country"`
	Subdivisions       []Subdivision       `maxminddb:"subdivisions"`
	Traits             *Traits             `maxminddb:"traits"`
}

// AnonymousIP is the GeoIP2 Anonymous IP record.
type AnonymousIP struct {
	IsAnonymous        *bool `maxminddb:"is_anonymous"`
	IsAnonymousVPN     *bool `maxminddb:"is_anonymous_vpn"`
	IsHostingProvider  *bool `maxminddb:"is_hosting_provider"`
	IsPublicProxy      *bool `maxminddb:"is_public_proxy"`
	IsTorExitNode      *bool `maxminddb:"is_tor_exit_node"`
	IsResidentialProxy *bool `maxminddb:"is_residential_proxy"`
}

// ASN is the GeoLite2 ASN record.
type ASN struct {
	AutonomousSystemNumber       *uint32 `maxminddb:"autonomous_system_number"`
	AutonomousSystemOrganization *string `maxminddb:"autonomous_system_organization"`
}

// ConnectionType is the GeoIP2 Connection Type record.
type ConnectionType struct {
	ConnectionType *string `maxminddb:"connection_type"`
}

// DensityIncome is the GeoIP2 Density Income record.
type DensityIncome struct {
	PopulationDensity *uint32 `maxminddb:"population_density"`
	AverageIncome     *uint32 `maxminddb:"average_income"`
}

// Domain is the GeoIP2 Domain record.
type Domain struct {
	Domain *string `maxminddb:"domain"`
}

// ISP is the GeoIP2 ISP record.
type ISP struct {
	AutonomousSystemNumber       *uint32 `maxminddb:"autonomous_system_number"`
	AutonomousSystemOrganization *string `maxminddb:"autonomous_system_organization"`
	ISP                          *string `maxminddb:"isp"`
	Organization                 *string `maxminddb:"organization"`
	MobileCountryCode            *string `maxminddb:"mobile_country_code"`
	MobileNetworkCode            *string `maxminddb:"mobile_network_code"`
}
