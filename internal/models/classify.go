package models

// Waste categories returned by the classifier.
const (
	CategoryRecyclable  = "recyclable"
	CategoryCompostable = "compostable"
	CategoryLandfill    = "landfill"
	CategoryEWaste      = "e-waste"
	CategoryHazardous   = "hazardous"
	CategoryReusable    = "reusable"
)

var categoryPoints = map[string]int{
	CategoryRecyclable:  15,
	CategoryCompostable: 15,
	CategoryReusable:    20,
	CategoryEWaste:      10,
	CategoryHazardous:   10,
	CategoryLandfill:    PointsLandfill,
}

// PointsForCategory returns the Green Score points for a sorted item.
// Unknown categories earn the landfill amount.
func PointsForCategory(category string) int {
	if p, ok := categoryPoints[category]; ok {
		return p
	}
	return PointsLandfill
}

// ClassificationRequest is the POST /api/classify request body.
type ClassificationRequest struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type,omitempty" example:"image/jpeg"`
}

type ClassificationResult struct {
	Category             string `json:"category"`
	Confidence           string `json:"confidence"`
	ItemName             string `json:"item_name"`
	DisposalInstructions string `json:"disposal_instructions"`
	GMUTip               string `json:"gmu_tip"`
	FunFact              string `json:"fun_fact"`
	PointsEarned         int    `json:"points_earned"`
}

// FallbackClassification is used when the model answer cannot be parsed.
func FallbackClassification() ClassificationResult {
	return ClassificationResult{
		Category:             CategoryLandfill,
		Confidence:           "low",
		ItemName:             "unidentified item",
		DisposalInstructions: "When in doubt, place in the general waste bin.",
		GMUTip:               "Check the recycling guide at sustainability.gmu.edu for detailed sorting info.",
		FunFact:              "The average American produces about 4.4 pounds of waste per day!",
		PointsEarned:         PointsLandfill,
	}
}
