package entities

type Producer struct {
	ID   int64   `gorm:"column:id_produtor;primaryKey" json:"id_produtor"`
	Name string  `gorm:"column:nome_produtor" json:"nome_produtor"`
	CPF  *string `gorm:"column:cpf_produtor" json:"cpf_produtor"`
	Code *string `gorm:"column:codigo_produtor" json:"codigo_produtor"`
}

func (Producer) TableName() string { return "produtor" }

// ProducerCooperative links a producer to its current cooperative.
// At most one row exists per producer.
type ProducerCooperative struct {
	ID            int64 `gorm:"column:id_cooperativa_produtor;primaryKey"`
	CooperativeID int64 `gorm:"column:id_cooperativa"`
	ProducerID    int64 `gorm:"column:id_produtor"`
}

func (ProducerCooperative) TableName() string { return "cooperativa_produtor" }

// ProducerWithCooperative is a producer row left-joined with its cooperative.
type ProducerWithCooperative struct {
	Producer
	CooperativeID   *int64  `gorm:"column:id_cooperativa" json:"id_cooperativa"`
	CooperativeName *string `gorm:"column:cooperativa" json:"cooperativa"`
}
