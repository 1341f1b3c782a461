package dto

// PredictRequest documents the questionnaire body; the handler binds it as a
// free-form object so unknown keys are forwarded to the classifier.
type PredictRequest struct {
	Gender         string `json:"Gender" example:"Perempuan" enums:"Laki-laki,Perempuan"`
	MinatTeknologi string `json:"Minat_Teknologi" example:"Ya" enums:"Ya,Tidak"`
	MinatSeni      string `json:"Minat_Seni" example:"Tidak" enums:"Ya,Tidak"`
	MinatBisnis    string `json:"Minat_Bisnis" example:"Tidak" enums:"Ya,Tidak"`
	MinatHukum     string `json:"Minat_Hukum" example:"Tidak" enums:"Ya,Tidak"`
	MinatKesehatan string `json:"Minat_Kesehatan" example:"Ya" enums:"Ya,Tidak"`
	MinatSains     string `json:"Minat_Sains" example:"Ya" enums:"Ya,Tidak"`
	ProblemSolving string `json:"Problem_Solving" example:"Tinggi" enums:"Sangat Rendah,Rendah,Sedang,Tinggi,Sangat Tinggi"`
	Kreativitas    string `json:"Kreativitas" example:"Sedang" enums:"Sangat Rendah,Rendah,Sedang,Tinggi,Sangat Tinggi"`
	Kepemimpinan   string `json:"Kepemimpinan" example:"Sedang" enums:"Sangat Rendah,Rendah,Sedang,Tinggi,Sangat Tinggi"`
	KerjaTim       string `json:"Kerja_Tim" example:"Tinggi" enums:"Sangat Rendah,Rendah,Sedang,Tinggi,Sangat Tinggi"`
	NilaiAkhir     string `json:"nilai akhir SMA/SMK" example:"87.5"`
}

// MajorScore is one ranked classifier entry
type MajorScore struct {
	MajorName string  `json:"majorName" example:"Teknik Informatika"`
	Score     float64 `json:"score" example:"0.91"`
}

// PredictResponse is the classifier result
type PredictResponse struct {
	Success    bool            `json:"success" example:"true"`
	Message    string          `json:"message" example:"Prediction completed"`
	Prediction *string         `json:"prediction" example:"Teknik Informatika"`
	Result     []MajorScore    `json:"result"`
	Top3       [][]interface{} `json:"top3" swaggertype:"array,object"`
}
