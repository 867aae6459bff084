package domain

import "context"

type Location struct {
	Code        int    `gorm:"column:cod_local;primaryKey;autoIncrement" json:"cod_local"`
	Description string `gorm:"column:descricao;size:128;not null" json:"descricao"` // not unique
	Active      bool   `gorm:"column:ativo;not null" json:"ativo"`
}

func (Location) TableName() string { return "locations" }

type LocationRepository interface {
	ListLocations(ctx context.Context) ([]Location, error)
	CreateLocation(ctx context.Context, l *Location) error
	UpdateLocation(ctx context.Context, l *Location) error
	// DeleteLocation 若仍有资产引用该位置，返回 ErrLocationInUse 且不做任何修改
	DeleteLocation(ctx context.Context, code int) error
}
