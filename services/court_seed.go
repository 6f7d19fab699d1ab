package services

import (
	"fmt"
	"lawyer_diary_go/models"
	"log"

	"gorm.io/gorm"
)

// Indian courts directory data
var indianCourts = []models.Court{
	{
		Name:        "Supreme Court of India",
		CourtType:   models.CourtTypeSupreme,
		Location:    "New Delhi",
		State:       "Delhi",
		Address:     "Tilak Marg, New Delhi - 110001",
		ContactInfo: "Phone: 011-23388922, 011-23388942",
	},
	{
		Name:        "Delhi High Court",
		CourtType:   models.CourtTypeHigh,
		Location:    "New Delhi",
		State:       "Delhi",
		Address:     "Sher Shah Road, New Delhi - 110503",
		ContactInfo: "Phone: 011-23358757",
	},
	{
		Name:        "Bombay High Court",
		CourtType:   models.CourtTypeHigh,
		Location:    "Mumbai",
		State:       "Maharashtra",
		Address:     "Fort, Mumbai - 400001",
		ContactInfo: "Phone: 022-22620578",
	},
	{
		Name:        "Madras High Court",
		CourtType:   models.CourtTypeHigh,
		Location:    "Chennai",
		State:       "Tamil Nadu",
		Address:     "High Court Buildings, Chennai - 600104",
		ContactInfo: "Phone: 044-25211415",
	},
	{
		Name:        "Calcutta High Court",
		CourtType:   models.CourtTypeHigh,
		Location:    "Kolkata",
		State:       "West Bengal",
		Address:     "Esplanade Row, Kolkata - 700001",
		ContactInfo: "Phone: 033-22523839",
	},
	{
		Name:        "Karnataka High Court",
		CourtType:   models.CourtTypeHigh,
		Location:    "Bangalore",
		State:       "Karnataka",
		Address:     "Attara Kacheri Road, Bangalore - 560001",
		ContactInfo: "Phone: 080-22212161",
	},
	{
		Name:        "Kerala High Court",
		CourtType:   models.CourtTypeHigh,
		Location:    "Kochi",
		State:       "Kerala",
		Address:     "High Court P.O, Kochi - 682031",
		ContactInfo: "Phone: 0484-2391020",
	},
	{
		Name:        "Allahabad High Court",
		CourtType:   models.CourtTypeHigh,
		Location:    "Prayagraj",
		State:       "Uttar Pradesh",
		Address:     "Kutchery Road, Prayagraj - 211001",
		ContactInfo: "Phone: 0532-2421481",
	},
	{
		Name:        "Rajasthan High Court",
		CourtType:   models.CourtTypeHigh,
		Location:    "Jodhpur",
		State:       "Rajasthan",
		Address:     "High Court Road, Jodhpur - 342001",
		ContactInfo: "Phone: 0291-2543536",
	},
	{
		Name:        "Punjab and Haryana High Court",
		CourtType:   models.CourtTypeHigh,
		Location:    "Chandigarh",
		State:       "Chandigarh",
		Address:     "Sector 1, Chandigarh - 160001",
		ContactInfo: "Phone: 0172-2740241",
	},
	{
		Name:        "Patiala House Courts Complex",
		CourtType:   models.CourtTypeDistrict,
		Location:    "New Delhi",
		State:       "Delhi",
		Address:     "Patiala House, New Delhi - 110001",
		ContactInfo: "Phone: 011-23073431",
	},
	{
		Name:        "Tis Hazari Courts",
		CourtType:   models.CourtTypeDistrict,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Tis Hazari, Delhi - 110054",
		ContactInfo: "Phone: 011-23912345",
	},
	{
		Name:        "Karkardooma Courts",
		CourtType:   models.CourtTypeDistrict,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Karkardooma, Delhi - 110032",
		ContactInfo: "Phone: 011-22151234",
	},
	{
		Name:        "Dwarka Courts",
		CourtType:   models.CourtTypeDistrict,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Sector 10, Dwarka, Delhi - 110075",
		ContactInfo: "Phone: 011-25081234",
	},
	{
		Name:        "Rohini Courts",
		CourtType:   models.CourtTypeDistrict,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Sector 14, Rohini, Delhi - 110085",
		ContactInfo: "Phone: 011-27551234",
	},
	{
		Name:        "City Civil and Sessions Court, Mumbai",
		CourtType:   models.CourtTypeDistrict,
		Location:    "Mumbai",
		State:       "Maharashtra",
		Address:     "Maharashtra Chambers, Mumbai - 400001",
		ContactInfo: "Phone: 022-22621234",
	},
	{
		Name:        "Additional Sessions Court, Borivali",
		CourtType:   models.CourtTypeDistrict,
		Location:    "Mumbai",
		State:       "Maharashtra",
		Address:     "Borivali (W), Mumbai - 400092",
		ContactInfo: "Phone: 022-28911234",
	},
	{
		Name:        "Additional Sessions Court, Andheri",
		CourtType:   models.CourtTypeDistrict,
		Location:    "Mumbai",
		State:       "Maharashtra",
		Address:     "Andheri (E), Mumbai - 400069",
		ContactInfo: "Phone: 022-26831234",
	},
	{
		Name:        "Sessions Court, Bangalore",
		CourtType:   models.CourtTypeSessions,
		Location:    "Bangalore",
		State:       "Karnataka",
		Address:     "Bangalore City Court Complex - 560001",
		ContactInfo: "Phone: 080-22871234",
	},
	{
		Name:        "Sessions Court, Chennai",
		CourtType:   models.CourtTypeSessions,
		Location:    "Chennai",
		State:       "Tamil Nadu",
		Address:     "Chennai City Court Complex - 600001",
		ContactInfo: "Phone: 044-28451234",
	},
	{
		Name:        "Sessions Court, Pune",
		CourtType:   models.CourtTypeSessions,
		Location:    "Pune",
		State:       "Maharashtra",
		Address:     "Shivajinagar, Pune - 411005",
		ContactInfo: "Phone: 020-25531234",
	},
	{
		Name:        "Chief Metropolitan Magistrate Court, Delhi",
		CourtType:   models.CourtTypeCJM,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Tis Hazari Courts, Delhi - 110054",
		ContactInfo: "Phone: 011-23912345",
	},
	{
		Name:        "Metropolitan Magistrate Court, Mumbai",
		CourtType:   models.CourtTypeMagistrate,
		Location:    "Mumbai",
		State:       "Maharashtra",
		Address:     "Bandra Court, Mumbai - 400050",
		ContactInfo: "Phone: 022-26451234",
	},
	{
		Name:        "Judicial Magistrate First Class, Gurgaon",
		CourtType:   models.CourtTypeJMFC,
		Location:    "Gurgaon",
		State:       "Haryana",
		Address:     "Mini Secretariat, Gurgaon - 122001",
		ContactInfo: "Phone: 0124-2321234",
	},
	{
		Name:        "Family Court, Delhi",
		CourtType:   models.CourtTypeFamily,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Tis Hazari Courts, Delhi - 110054",
		ContactInfo: "Phone: 011-23915678",
	},
	{
		Name:        "Family Court, Mumbai",
		CourtType:   models.CourtTypeFamily,
		Location:    "Mumbai",
		State:       "Maharashtra",
		Address:     "Bandra Court Complex, Mumbai - 400050",
		ContactInfo: "Phone: 022-26455678",
	},
	{
		Name:        "Family Court, Bangalore",
		CourtType:   models.CourtTypeFamily,
		Location:    "Bangalore",
		State:       "Karnataka",
		Address:     "City Court Complex, Bangalore - 560001",
		ContactInfo: "Phone: 080-22875678",
	},
	{
		Name:        "National Consumer Disputes Redressal Commission",
		CourtType:   models.CourtTypeConsumer,
		Location:    "New Delhi",
		State:       "Delhi",
		Address:     "Upbhokta Nyay Bhawan, New Delhi - 110001",
		ContactInfo: "Phone: 011-23236300",
	},
	{
		Name:        "State Consumer Disputes Redressal Commission, Delhi",
		CourtType:   models.CourtTypeConsumer,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "B-1/10, Ardee City, Gurgaon - 122003",
		ContactInfo: "Phone: 011-28335200",
	},
	{
		Name:        "District Consumer Forum, Mumbai",
		CourtType:   models.CourtTypeConsumer,
		Location:    "Mumbai",
		State:       "Maharashtra",
		Address:     "Tardeo, Mumbai - 400034",
		ContactInfo: "Phone: 022-24951234",
	},
	{
		Name:        "Labour Court, Delhi",
		CourtType:   models.CourtTypeLabour,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Karkardooma Courts, Delhi - 110032",
		ContactInfo: "Phone: 011-22155678",
	},
	{
		Name:        "Industrial Tribunal, Mumbai",
		CourtType:   models.CourtTypeLabour,
		Location:    "Mumbai",
		State:       "Maharashtra",
		Address:     "Ballard Estate, Mumbai - 400001",
		ContactInfo: "Phone: 022-22615678",
	},
	{
		Name:        "National Green Tribunal",
		CourtType:   models.CourtTypeTribunal,
		Location:    "New Delhi",
		State:       "Delhi",
		Address:     "Faridkot House, New Delhi - 110003",
		ContactInfo: "Phone: 011-24695174",
	},
	{
		Name:        "Income Tax Appellate Tribunal",
		CourtType:   models.CourtTypeTribunal,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Aayakar Bhawan, New Delhi - 110002",
		ContactInfo: "Phone: 011-23738481",
	},
	{
		Name:        "Central Administrative Tribunal",
		CourtType:   models.CourtTypeTribunal,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Copernicus Marg, New Delhi - 110001",
		ContactInfo: "Phone: 011-23388546",
	},
	{
		Name:        "Debts Recovery Tribunal, Delhi",
		CourtType:   models.CourtTypeDebts,
		Location:    "Delhi",
		State:       "Delhi",
		Address:     "Jamnagar House, New Delhi - 110011",
		ContactInfo: "Phone: 011-23013050",
	},
	{
		Name:        "Debts Recovery Tribunal, Mumbai",
		CourtType:   models.CourtTypeDebts,
		Location:    "Mumbai",
		State:       "Maharashtra",
		Address:     "Ballard Estate, Mumbai - 400001",
		ContactInfo: "Phone: 022-22651234",
	},
}

// SeedCourts inserts the Indian courts directory. Existing courts
// (matched on name, type, location and state) get their address and
// contact info refreshed, so re-running the seeder is safe.
func SeedCourts(db *gorm.DB) error {
	log.Println("Seeding Indian courts directory...")

	created := 0
	updated := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, data := range indianCourts {
			var existing models.Court
			result := tx.Where(
				"name = ? AND court_type = ? AND location = ? AND state = ?",
				data.Name, data.CourtType, data.Location, data.State,
			).First(&existing)

			if result.Error == gorm.ErrRecordNotFound {
				court := data
				if err := tx.Create(&court).Error; err != nil {
					return fmt.Errorf("failed to create court %s: %w", data.Name, err)
				}
				created++
				continue
			}
			if result.Error != nil {
				return fmt.Errorf("failed to look up court %s: %w", data.Name, result.Error)
			}

			existing.Address = data.Address
			existing.ContactInfo = data.ContactInfo
			if err := tx.Save(&existing).Error; err != nil {
				return fmt.Errorf("failed to update court %s: %w", data.Name, err)
			}
			updated++
		}
		return nil
	})
	if err != nil {
		return err
	}

	FlushCourtCache()
	log.Printf("Courts seeded: %d created, %d updated", created, updated)
	return nil
}
