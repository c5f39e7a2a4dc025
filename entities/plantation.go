package entities

type Plantation struct {
	ID             int64   `gorm:"column:id_plantacao;primaryKey" json:"id_plantacao"`
	ProducerID     int64   `gorm:"column:id_produtor" json:"id_produtor"`
	VarietyID      int64   `gorm:"column:id_variedade" json:"id_variedade"`
	CommunityID    int64   `gorm:"column:id_comunidade" json:"id_comunidade"`
	MunicipalityID int64   `gorm:"column:id_municipio" json:"id_municipio"`
	Name           string  `gorm:"column:nome_plantacao" json:"nome_plantacao"`
	Talhao         *string `gorm:"column:nome_talhao" json:"nome_talhao"`
	// geo fields stay text so "-20.123400" keeps its formatting
	Latitude      *string       `gorm:"column:latitude" json:"latitude"`
	Longitude     *string       `gorm:"column:longitude" json:"longitude"`
	Altitude      *string       `gorm:"column:altitude_media" json:"altitude_media"`
	HarvestMonths HarvestMonths `gorm:"column:meses_colheita" json:"meses_colheita"`
}

func (Plantation) TableName() string { return "plantacao" }

type PlantationFace struct {
	ID           int64 `gorm:"column:id_face_exposicao_plantacao;primaryKey"`
	FaceID       int64 `gorm:"column:id_face_exposicao"`
	PlantationID int64 `gorm:"column:id_plantacao"`
}

func (PlantationFace) TableName() string { return "face_exposicao_plantacao" }

// PlantationDetail is a plantation with the ids of its exposure faces.
type PlantationDetail struct {
	Plantation
	FaceIDs []int64 `json:"faces"`
}

type ExposureFace struct {
	ID   int64  `gorm:"column:id_face_exposicao;primaryKey" json:"id_face_exposicao"`
	Name string `gorm:"column:nome_face_exposicao" json:"nome_face_exposicao"`
}

func (ExposureFace) TableName() string { return "face_exposicao" }
