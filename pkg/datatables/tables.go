// Package datatables holds the static lookup tables used by the generators:
// regional names, addresses, brands, categories and per-category price ranges.
// Pure data, no logic.
package datatables

import "github.com/mimic-data/mimic-engine/pkg/models"

var FirstNames = []string{
	"Budi", "Siti", "Ahmad", "Dewi", "Agus", "Sri", "Andi", "Rina", "Joko", "Ayu",
	"Bambang", "Fitri", "Hendra", "Lestari", "Rudi", "Wati", "Eko", "Indah", "Dedi", "Ratna",
	"Hadi", "Yuli", "Arif", "Nur", "Fajar", "Maya", "Rizki", "Putri", "Doni", "Sari",
	"Wahyu", "Dian", "Irfan", "Mega", "Taufik", "Nina", "Bayu", "Lina", "Adi", "Yanti",
	"Gilang", "Citra", "Reza", "Intan", "Yusuf", "Ratih", "Hari", "Novi", "Iwan", "Tika",
}

var LastNames = []string{
	"Santoso", "Wijaya", "Saputra", "Kusuma", "Hidayat", "Pratama", "Utami", "Nugroho",
	"Setiawan", "Rahayu", "Susanto", "Permata", "Hartono", "Wibowo", "Gunawan", "Suryani",
	"Firmansyah", "Maulana", "Siregar", "Nasution", "Simanjuntak", "Hutapea", "Halim",
	"Tanuwijaya", "Kurniawan", "Ramadhan", "Puspita", "Anggraini", "Mahendra", "Putra",
}

var Cities = []string{
	"Jakarta", "Surabaya", "Bandung", "Medan", "Semarang", "Makassar", "Palembang",
	"Tangerang", "Depok", "Bekasi", "Yogyakarta", "Malang", "Denpasar", "Bogor",
	"Padang", "Pekanbaru", "Balikpapan", "Banjarmasin", "Pontianak", "Manado",
}

var Streets = []string{
	"Jl. Sudirman", "Jl. Thamrin", "Jl. Gatot Subroto", "Jl. Ahmad Yani", "Jl. Diponegoro",
	"Jl. Gajah Mada", "Jl. Pahlawan", "Jl. Merdeka", "Jl. Veteran", "Jl. Imam Bonjol",
	"Jl. Hayam Wuruk", "Jl. Asia Afrika", "Jl. Cendrawasih", "Jl. Melati", "Jl. Kenanga",
}

var Countries = []string{
	"Indonesia", "Malaysia", "Singapore", "Thailand", "Vietnam", "Philippines",
	"Japan", "South Korea", "Australia", "United States",
}

// PhonePrefixes are mobile operator prefixes; a full number appends 7-8 digits.
var PhonePrefixes = []string{
	"0811", "0812", "0813", "0821", "0822", "0852", "0853", "0856", "0857",
	"0877", "0878", "0881", "0895", "0896",
}

var Companies = []string{
	"PT Maju Bersama", "PT Sinar Abadi", "CV Karya Mandiri", "PT Cipta Solusi",
	"PT Mitra Sejahtera", "CV Berkah Jaya", "PT Nusantara Digital", "PT Prima Teknologi",
	"PT Bintang Timur", "CV Harapan Baru", "PT Global Niaga", "PT Anugerah Makmur",
}

var Brands = []string{
	"Aurora", "Nimbus", "Zentro", "Kirana", "Velora", "Pandora", "Solari", "Mutiara",
	"Elang", "Cakra", "Satria", "Lumina", "Garuda", "Arjuna", "Prisma", "Senja",
}

var Categories = []string{
	"electronics", "fashion", "food", "books", "health", "home", "sports", "toys",
}

// BasePrices maps (price tier, category) to a base price in rupiah. The
// behavior engine applies jitter on top; unknown combinations fall back to
// DefaultBasePrice.
var BasePrices = map[models.PriceTier]map[string]float64{
	models.TierBudget: {
		"electronics": 150_000, "fashion": 50_000, "food": 25_000, "books": 40_000,
		"health": 30_000, "home": 60_000, "sports": 80_000, "toys": 45_000,
	},
	models.TierMidRange: {
		"electronics": 1_200_000, "fashion": 250_000, "food": 75_000, "books": 95_000,
		"health": 120_000, "home": 350_000, "sports": 400_000, "toys": 180_000,
	},
	models.TierPremium: {
		"electronics": 8_000_000, "fashion": 1_500_000, "food": 300_000, "books": 250_000,
		"health": 500_000, "home": 2_500_000, "sports": 2_000_000, "toys": 750_000,
	},
}

// DefaultBasePrice is used when a (tier, category) pair is not registered.
const DefaultBasePrice = 100_000

var ProductAdjectives = []string{
	"Premium", "Classic", "Modern", "Compact", "Deluxe", "Eco", "Smart", "Ultra",
	"Mini", "Pro", "Lite", "Max",
}

var ProductNouns = []string{
	"Headphones", "Sneakers", "Backpack", "Blender", "Lamp", "Keyboard", "Watch",
	"Jacket", "Bottle", "Speaker", "Chair", "Notebook", "Camera", "Mat", "Kettle",
}

var EmailDomains = []string{
	"gmail.com", "yahoo.com", "outlook.com", "mail.com", "icloud.com",
	"example.com", "mimicmail.id", "kantor.co.id",
}

var PaymentMethods = []string{
	"credit_card", "debit_card", "bank_transfer", "gopay", "ovo", "dana", "cod",
}

var OrderStatuses = []string{
	"pending", "confirmed", "processing", "shipped", "delivered", "cancelled",
}

var Colors = []string{
	"red", "blue", "green", "yellow", "black", "white", "purple", "orange", "teal", "maroon",
}

var JobTitles = []string{
	"Software Engineer", "Product Manager", "Data Analyst", "Sales Executive",
	"Marketing Specialist", "Accountant", "HR Officer", "Operations Lead",
	"Customer Support", "Designer",
}

var Genders = []string{"male", "female"}

var Statuses = []string{"active", "pending", "suspended", "archived"}

var CurrencyCodes = []string{"IDR", "USD", "SGD", "MYR", "EUR", "JPY"}

var LoremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "minim", "veniam", "quis", "nostrud", "exercitation",
	"ullamco", "laboris", "nisi", "aliquip", "commodo", "consequat", "duis", "aute",
	"irure", "reprehenderit", "voluptate", "velit", "esse", "cillum", "fugiat",
	"nulla", "pariatur", "excepteur", "sint", "occaecat", "cupidatat", "proident",
}

// PositiveComments is the pool drawn from for ratings of 4.0 and above.
var PositiveComments = []string{
	"Barang bagus, sesuai deskripsi!",
	"Pengiriman cepat, penjual ramah.",
	"Kualitas melebihi ekspektasi, recommended!",
	"Sangat puas, pasti beli lagi.",
	"Packing rapi, produk original.",
	"Harga sebanding dengan kualitas.",
}

// MildNegativeComment is returned for ratings in [2.0, 4.0).
const MildNegativeComment = "Lumayan, tapi ada beberapa kekurangan."

// StrongNegativeComment is returned for ratings below 2.0.
const StrongNegativeComment = "Kecewa, barang tidak sesuai deskripsi."
