package product

const unsplash = "https://images.unsplash.com/"

func img(photo string) string {
	return unsplash + photo + "?auto=format&fit=crop&q=80&w=800"
}

// fallbackCatalog is served when the backend cannot be reached.
var fallbackCatalog = []Product{
	{
		ID:          "1",
		Name:        "CYBER DIESEL JACKET",
		Price:       8500,
		Category:    "OUTERWEAR",
		Images:      []string{img("photo-1551028919-ac66c5f8b6b0"), img("photo-1520975661595-dc998dd24d95")},
		Description: "Distressed Italian denim. 2003 Archive piece. Heavy weight.",
		Tags:        []string{"archive", "y2k", "outerwear"},
		Size:        "L",
	},
	{
		ID:          "2",
		Name:        "MATRIX TRENCH",
		Price:       12000,
		Category:    "OUTERWEAR",
		Images:      []string{img("photo-1534349762913-96c87130f6bf"), img("photo-1504194921103-f8b80cadd5e4")},
		Description: "Floor length leather coating. Waterproof. The One.",
		Tags:        []string{"dark", "matrix", "leather"},
		Size:        "XL",
	},
	{
		ID:          "3",
		Name:        "ACID WASH CARGO",
		Price:       4500,
		Category:    "BOTTOMS",
		Images:      []string{img("photo-1624378439575-d8aa19c84bfa"), img("photo-1584370848010-d7cc6bc76e4f")},
		Description: "Baggy fit multi-pocket cargo pants. Chemical wash treatment.",
		Tags:        []string{"streetwear", "baggy", "utilitarian"},
		Size:        "32",
	},
	{
		ID:          "4",
		Name:        "VAMP MESH TOP",
		Price:       3200,
		Category:    "TOPS",
		Images:      []string{img("photo-1618354691373-d851c5c3a990"), img("photo-1503342394128-c104d54dba01")},
		Description: "Sheer tactical mesh with asymmetric cutouts.",
		Tags:        []string{"club", "mesh", "avant-garde"},
		Size:        "M",
	},
	{
		ID:          "5",
		Name:        "CHROME HEART NECK",
		Price:       15000,
		Category:    "ACCESSORIES",
		Images:      []string{img("photo-1599643478518-17488fbbcd75"), img("photo-1611652022419-a9419f74343d")},
		Description: ".925 Silver chunky chain. Industrial aesthetic.",
		Tags:        []string{"jewelry", "silver", "chrome"},
		Size:        "OS",
	},
	{
		ID:          "6",
		Name:        "OAKLEY VINTAGE",
		Price:       9000,
		Category:    "ACCESSORIES",
		Images:      []string{img("photo-1577803645773-f96470509666"), img("photo-1511499767150-a48a237f0083")},
		Description: "Speed dealer shades. Iridescent lens. Mint condition.",
		Tags:        []string{"eyewear", "sport", "fast"},
		Size:        "OS",
	},
	{
		ID:          "7",
		Name:        "DESTROYED KNIT",
		Price:       5500,
		Category:    "TOPS",
		Images:      []string{img("photo-1621072156002-e2fccdc0b176"), img("photo-1576566588028-4147f3842f27")},
		Description: "Hand distressed mohair blend. Oversized sleeves.",
		Tags:        []string{"grunge", "knit", "winter"},
		Size:        "L",
	},
	{
		ID:          "8",
		Name:        "BALENCI RUNNER",
		Price:       22000,
		Category:    "FOOTWEAR",
		Images:      []string{img("photo-1595950653106-6c9ebd614d3a"), img("photo-1549298916-b41d501d3772")},
		Description: "Heavily used aesthetic. Technical construction.",
		Tags:        []string{"shoes", "designer", "chunky"},
		Size:        "43",
	},
	{
		ID:          "9",
		Name:        "HEAVY METAL TEE",
		Price:       4000,
		Category:    "TOPS",
		Images:      []string{img("photo-1576871337632-b9aef4c17ab9"), img("photo-1503341455253-b2e72333dbdb")},
		Description: "Vintage 1999 tour t-shirt. Faded black. Boxy fit.",
		Tags:        []string{"vintage", "band", "tee"},
		Size:        "XL",
	},
	{
		ID:          "10",
		Name:        "PATCHWORK DENIM",
		Price:       7500,
		Category:    "BOTTOMS",
		Images:      []string{img("photo-1541099649105-f69ad21f3246"), img("photo-1542272454315-4c01d7abdf4a")},
		Description: "Custom reconstructed jeans. Japanese denim patches.",
		Tags:        []string{"custom", "denim", "pants"},
		Size:        "30",
	},
	{
		ID:          "11",
		Name:        "TACTICAL VEST",
		Price:       6000,
		Category:    "OUTERWEAR",
		Images:      []string{img("photo-1506634572416-48cdfe530110"), img("photo-1515347619252-60a6bf4fffce")},
		Description: "Military surplus vest. Multi-pockets. Techwear staple.",
		Tags:        []string{"techwear", "vest", "military"},
		Size:        "M",
	},
	{
		ID:          "12",
		Name:        "GOTHIC RINGS",
		Price:       3500,
		Category:    "ACCESSORIES",
		Images:      []string{img("photo-1605100804763-eb2fc960239c"), img("photo-1535632066927-ab7c9ab60908")},
		Description: "Set of 3 stainless steel rings. Claw and skull motifs.",
		Tags:        []string{"jewelry", "rings", "accessories"},
		Size:        "OS",
	},
}

// Fallback returns a fresh copy of the bundled catalog.
func Fallback() []Product {
	return CloneAll(fallbackCatalog)
}
