package catalog

// Service types offered by the shop. Closed set: the booking form, the admin
// panel and the stored bookings all key on these identifiers.
const (
	ExteriorOnly     = "exteriorOnly"
	InteriorOnly     = "interiorOnly"
	StandardDetail   = "standardDetail"
	PremiumDetail    = "premiumDetail"
	CeramicCoating   = "ceramicCoating"
	RVWash           = "rvWash"
	MotorcycleDetail = "motorcycleDetail"
)

// Service pairs a service type with its display label and price hint.
// Labels and prices are presentation data only; bookings store the type.
type Service struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Price string `json:"price"`
}

var services = []Service{
	{Type: ExteriorOnly, Label: "Basic Exterior Wash", Price: "$35"},
	{Type: InteriorOnly, Label: "Basic Interior Clean", Price: "$45"},
	{Type: StandardDetail, Label: "Standard Detail", Price: "$60"},
	{Type: PremiumDetail, Label: "Premium Detail", Price: "$120"},
	{Type: CeramicCoating, Label: "Ceramic Coating", Price: "Contact for Quote"},
	{Type: RVWash, Label: "RV Wash", Price: "Contact for Quote"},
	{Type: MotorcycleDetail, Label: "Motorcycle Detail", Price: "$50"},
}

// Services returns the full catalog in display order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ValidServiceType reports whether s names a service in the catalog.
func ValidServiceType(s string) bool {
	for _, svc := range services {
		if svc.Type == s {
			return true
		}
	}
	return false
}

// Label returns the display label for a service type, or the type itself
// when it is unknown.
func Label(serviceType string) string {
	for _, svc := range services {
		if svc.Type == serviceType {
			return svc.Label
		}
	}
	return serviceType
}
