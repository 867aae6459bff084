package domain

import (
	"context"
	"strings"
	"unicode/utf8"
)

type AssetStatus string

const (
	StatusActive     AssetStatus = "Ativo"
	StatusInactive   AssetStatus = "Inativo"
	StatusWrittenOff AssetStatus = "Baixado"
)

// AssetStatuses 封闭集合，顺序即展示顺序
var AssetStatuses = []AssetStatus{StatusActive, StatusInactive, StatusWrittenOff}

func (s AssetStatus) Valid() bool {
	for _, v := range AssetStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// AssetCodeLen 外部编码固定长度
const AssetCodeLen = 8

type Asset struct {
	Cod               int         `gorm:"column:cod;primaryKey;autoIncrement" json:"cod"`
	Code              string      `gorm:"column:codigo_bem;size:8;index;not null" json:"codigo_bem"`
	Description       string      `gorm:"column:descricao;size:255;not null" json:"descricao"`
	AcquiredAt        string      `gorm:"column:data_aquisicao;size:10;not null" json:"data_aquisicao"` // YYYY-MM-DD
	AcquisitionMethod *string     `gorm:"column:forma_aquisicao;size:64" json:"forma_aquisicao,omitempty"`
	Supplier          *string     `gorm:"column:fornecedor;size:128" json:"fornecedor,omitempty"`
	LocationCode      int         `gorm:"column:local_fisico;index;not null" json:"local_fisico"`
	Status            AssetStatus `gorm:"column:situacao;size:16;not null" json:"situacao"`
	Inventoried       bool        `gorm:"column:inventariado;not null" json:"inventariado"`
	Notes             *string     `gorm:"column:observacoes;type:text" json:"observacoes,omitempty"`
}

func (Asset) TableName() string { return "assets" }

func (a Asset) Clone() Asset {
	a.AcquisitionMethod = cloneString(a.AcquisitionMethod)
	a.Supplier = cloneString(a.Supplier)
	a.Notes = cloneString(a.Notes)
	return a
}

// PadAssetCode 左补零到 8 位；超长输入原样保留
func PadAssetCode(code string) string {
	if n := utf8.RuneCountInString(code); n < AssetCodeLen {
		return strings.Repeat("0", AssetCodeLen-n) + code
	}
	return code
}

type AssetRepository interface {
	ListAssets(ctx context.Context) ([]Asset, error)
	FindAssetByCode(ctx context.Context, code string) (Asset, error)
	CreateAsset(ctx context.Context, a *Asset) error
	UpdateAsset(ctx context.Context, a *Asset) error
	DeleteAsset(ctx context.Context, cod int) error
}

// Repository 数据存储的全部端口
type Repository interface {
	UserRepository
	LocationRepository
	AssetRepository
}
