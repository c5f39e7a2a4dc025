package entities

// ProducerReport is one producer with its cooperative and plantation count.
type ProducerReport struct {
	ProducerWithCooperative
	Plantations int64 `gorm:"column:total_plantacoes" json:"total_plantacoes"`
}

// PlantationReport flattens a plantation with the display names of its
// references. Faces holds every face name joined by ", ".
type PlantationReport struct {
	ID            int64         `gorm:"column:id_plantacao" json:"id_plantacao"`
	Name          string        `gorm:"column:nome_plantacao" json:"nome_plantacao"`
	Producer      *string       `gorm:"column:produtor" json:"produtor"`
	Variety       *string       `gorm:"column:variedade" json:"variedade"`
	Community     *string       `gorm:"column:comunidade" json:"comunidade"`
	Municipality  *string       `gorm:"column:municipio" json:"municipio"`
	Latitude      *string       `gorm:"column:latitude" json:"latitude"`
	Longitude     *string       `gorm:"column:longitude" json:"longitude"`
	Altitude      *string       `gorm:"column:altitude_media" json:"altitude_media"`
	Talhao        *string       `gorm:"column:nome_talhao" json:"nome_talhao"`
	Faces         *string       `gorm:"column:faces_exposicao" json:"faces_exposicao"`
	HarvestMonths HarvestMonths `gorm:"column:meses_colheita" json:"meses_colheita"`
}

// ExportRow is one line of the unified export, one per plantation.
type ExportRow struct {
	PlantationID  int64         `gorm:"column:id_plantacao" json:"id_plantacao"`
	ProducerCode  *string       `gorm:"column:codigo_produtor" json:"codigo_produtor"`
	ProducerName  string        `gorm:"column:nome_produtor" json:"nome_produtor"`
	CPF           *string       `gorm:"column:cpf_produtor" json:"cpf_produtor"`
	Cooperative   *string       `gorm:"column:cooperativa" json:"cooperativa"`
	Plantation    string        `gorm:"column:nome_plantacao" json:"nome_plantacao"`
	Talhao        *string       `gorm:"column:nome_talhao" json:"nome_talhao"`
	Variety       *string       `gorm:"column:variedade" json:"variedade"`
	Community     *string       `gorm:"column:comunidade" json:"comunidade"`
	Municipality  *string       `gorm:"column:municipio" json:"municipio"`
	Latitude      *string       `gorm:"column:latitude" json:"latitude"`
	Longitude     *string       `gorm:"column:longitude" json:"longitude"`
	Altitude      *string       `gorm:"column:altitude_media" json:"altitude_media"`
	Faces         *string       `gorm:"column:faces_exposicao" json:"faces_exposicao"`
	HarvestMonths HarvestMonths `gorm:"column:meses_colheita" json:"meses_colheita"`
}
