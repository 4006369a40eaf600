package portal

import "github.com/neximprove/portal/internal/models"

// demoShipments are written under the "shipments" key the first time the
// collection is read, so a fresh install has data to show.
var demoShipments = []models.Shipment{
	{
		ID:          "SH-001",
		Name:        "Electronics Import",
		Client:      "Tech Solutions Inc.",
		ClientRole:  models.RoleImporter,
		Origin:      "Shanghai, China",
		Destination: "Los Angeles, USA",
		Status:      models.StatusInProgress,
		Date:        "2025-12-01",
		Value:       "$45,230",
		Description: "Consumer electronics shipment including laptops and accessories",
		CreatedAt:   "2025-12-01T10:30:00Z",
	},
	{
		ID:          "SH-002",
		Name:        "Automotive Parts",
		Client:      "Global Traders Ltd.",
		ClientRole:  models.RoleExporter,
		Origin:      "Hamburg, Germany",
		Destination: "New York, USA",
		Status:      models.StatusCompleted,
		Date:        "2025-11-28",
		Value:       "$78,450",
		Description: "High-performance automotive components for luxury vehicles",
		CreatedAt:   "2025-11-28T14:20:00Z",
	},
	{
		ID:          "SH-003",
		Name:        "Medical Equipment",
		Client:      "Pacific Imports Co.",
		ClientRole:  models.RoleImporter,
		Origin:      "Tokyo, Japan",
		Destination: "Seattle, USA",
		Status:      models.StatusPending,
		Date:        "2025-12-03",
		Value:       "$52,100",
		Description: "Medical diagnostic equipment and laboratory supplies",
		CreatedAt:   "2025-12-03T09:15:00Z",
	},
	{
		ID:          "SH-004",
		Name:        "Textiles & Fabrics",
		Client:      "Euro Logistics",
		ClientRole:  models.RoleExporter,
		Origin:      "Rotterdam, Netherlands",
		Destination: "Miami, USA",
		Status:      models.StatusInProgress,
		Date:        "2025-11-30",
		Value:       "$63,890",
		Description: "Premium fabrics and textiles for fashion industry",
		CreatedAt:   "2025-11-30T11:45:00Z",
	},
	{
		ID:          "SH-005",
		Name:        "Industrial Machinery",
		Client:      "Asia Express LLC",
		ClientRole:  models.RoleExporter,
		Origin:      "Hong Kong",
		Destination: "San Francisco, USA",
		Status:      models.StatusCompleted,
		Date:        "2025-11-25",
		Value:       "$91,200",
		Description: "Heavy industrial machinery and manufacturing equipment",
		CreatedAt:   "2025-11-25T16:30:00Z",
	},
	{
		ID:          "SH-006",
		Name:        "Food & Beverages",
		Client:      "Continental Shipping",
		ClientRole:  models.RoleImporter,
		Origin:      "Singapore",
		Destination: "Houston, USA",
		Status:      models.StatusPending,
		Date:        "2025-12-04",
		Value:       "$38,750",
		Description: "Specialty food products and premium beverages",
		CreatedAt:   "2025-12-04T08:00:00Z",
	},
}
