package benchmark

// bound builds an optional bound for the built-in table.
func bound(v float64) *float64 { return &v }

// DefaultEntries returns the built-in benchmark table used when no external
// table is configured. Values are general adult reference ranges; a curated
// site-specific table should be preferred in production.
func DefaultEntries() []Entry {
	return []Entry{
		{
			TestName: "Hemoglobin", Aliases: []string{"Hb", "Hgb"},
			Low: bound(13.0), High: bound(17.0),
			Category:    "Complete Blood Count",
			Description: "Oxygen-carrying protein in red blood cells.",
		},
		{
			TestName: "Total RBC Count", Aliases: []string{"RBC", "RBC Count", "Red Blood Cell Count"},
			Low: bound(4.5), High: bound(5.9),
			Category:    "Complete Blood Count",
			Description: "Number of red blood cells per microliter of blood.",
		},
		{
			TestName: "Total Leucocyte Count", Aliases: []string{"WBC", "WBC Count", "TLC", "White Blood Cell Count"},
			Low: bound(4000), High: bound(11000),
			Category:    "Complete Blood Count",
			Description: "Number of white blood cells, the infection-fighting cells.",
		},
		{
			TestName: "Platelet Count", Aliases: []string{"PLT", "Platelets"},
			Low: bound(150), High: bound(450),
			Category:    "Complete Blood Count",
			Description: "Cells that help blood clot, in thousands per microliter.",
		},
		{
			TestName: "Hematocrit", Aliases: []string{"HCT", "PCV", "Packed Cell Volume"},
			Low: bound(40), High: bound(52),
			Category:    "Complete Blood Count",
			Description: "Percentage of blood volume occupied by red cells.",
		},
		{
			TestName: "MCV", Aliases: []string{"Mean Corpuscular Volume"},
			Low: bound(80), High: bound(100),
			Category:    "Complete Blood Count",
			Description: "Average size of red blood cells.",
		},
		{
			TestName: "ESR", Aliases: []string{"Erythrocyte Sedimentation Rate"},
			Low: nil, High: bound(15),
			Category:    "Inflammation",
			Description: "Non-specific marker of inflammation.",
		},
		{
			TestName: "C-Reactive Protein", Aliases: []string{"CRP"},
			Low: nil, High: bound(5),
			Category:    "Inflammation",
			Description: "Protein that rises with inflammation or infection.",
		},
		{
			TestName: "Fasting Blood Sugar", Aliases: []string{"FBS", "Fasting Glucose", "Glucose Fasting"},
			Low: bound(70), High: bound(100),
			Category:    "Diabetes",
			Description: "Blood glucose after an overnight fast.",
		},
		{
			TestName: "HbA1c", Aliases: []string{"Glycosylated Hemoglobin", "Glycated Hemoglobin"},
			Low: bound(4.0), High: bound(5.6),
			Category:    "Diabetes",
			Description: "Average blood glucose over the past three months.",
		},
		{
			TestName: "Total Cholesterol", Aliases: []string{"Cholesterol"},
			Low: bound(125), High: bound(200),
			Category:    "Lipid Profile",
			Description: "Total of all cholesterol in the blood.",
		},
		{
			TestName: "HDL Cholesterol", Aliases: []string{"HDL"},
			Low: bound(40), High: nil,
			Category:    "Lipid Profile",
			Description: "Protective cholesterol; higher is better.",
		},
		{
			TestName: "LDL Cholesterol", Aliases: []string{"LDL"},
			Low: nil, High: bound(130),
			Category:    "Lipid Profile",
			Description: "Cholesterol that can build up in arteries.",
		},
		{
			TestName: "Triglycerides", Aliases: []string{"TG"},
			Low: nil, High: bound(150),
			Category:    "Lipid Profile",
			Description: "Fat circulating in the blood.",
		},
		{
			TestName: "Serum Creatinine", Aliases: []string{"Creatinine"},
			Low: bound(0.7), High: bound(1.3),
			Category:    "Kidney Function",
			Description: "Waste product cleared by the kidneys.",
		},
		{
			TestName: "Blood Urea Nitrogen", Aliases: []string{"BUN", "Urea"},
			Low: bound(7), High: bound(20),
			Category:    "Kidney Function",
			Description: "Nitrogen waste cleared by the kidneys.",
		},
		{
			TestName: "Serum Sodium", Aliases: []string{"Sodium"},
			Low: bound(135), High: bound(145),
			Category:    "Electrolytes",
			Description: "Key electrolyte for fluid balance and nerves.",
		},
		{
			TestName: "Serum Potassium", Aliases: []string{"Potassium"},
			Low: bound(3.5), High: bound(5.1),
			Category:    "Electrolytes",
			Description: "Electrolyte critical for heart and muscle function.",
		},
		{
			TestName: "SGPT", Aliases: []string{"ALT", "Alanine Aminotransferase"},
			Low: nil, High: bound(40),
			Category:    "Liver Function",
			Description: "Liver enzyme; rises with liver cell injury.",
		},
		{
			TestName: "SGOT", Aliases: []string{"AST", "Aspartate Aminotransferase"},
			Low: nil, High: bound(40),
			Category:    "Liver Function",
			Description: "Enzyme found in liver and muscle.",
		},
		{
			TestName: "Total Bilirubin", Aliases: []string{"Bilirubin"},
			Low: bound(0.3), High: bound(1.2),
			Category:    "Liver Function",
			Description: "Pigment from red cell breakdown, cleared by the liver.",
		},
		{
			TestName: "TSH", Aliases: []string{"Thyroid Stimulating Hormone"},
			Low: bound(0.4), High: bound(4.0),
			Category:    "Thyroid",
			Description: "Pituitary hormone that regulates the thyroid.",
		},
		{
			TestName: "Vitamin D", Aliases: []string{"25-OH Vitamin D", "Vitamin D3"},
			Low: bound(30), High: bound(100),
			Category:    "Vitamins",
			Description: "Vitamin for bone health and immunity.",
		},
		{
			TestName: "Vitamin B12", Aliases: []string{"Cobalamin"},
			Low: bound(200), High: bound(900),
			Category:    "Vitamins",
			Description: "Vitamin for nerve function and red cell formation.",
		},
	}
}
