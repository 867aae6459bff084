package domain

import "context"

type User struct {
	ID                 int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string  `gorm:"column:nome;size:128;not null" json:"nome"`
	Login              string  `gorm:"column:login;size:64;index;not null" json:"login"` // not unique
	Email              string  `gorm:"column:email;size:191;not null" json:"email"`
	Active             bool    `gorm:"column:situacao;not null" json:"situacao"`
	RegistrationNumber *string `gorm:"column:matricula;size:32" json:"matricula,omitempty"`
	RegisteredAt       string  `gorm:"column:data_cadastro;size:10;not null" json:"data_cadastro"` // YYYY-MM-DD
}

func (User) TableName() string { return "users" }

// Clone 深拷贝（可选字段单独复制）
func (u User) Clone() User {
	u.RegistrationNumber = cloneString(u.RegistrationNumber)
	return u
}

type UserRepository interface {
	ListUsers(ctx context.Context) ([]User, error)
	FindUserByID(ctx context.Context, id int) (User, error)
	FindActiveUserByLogin(ctx context.Context, login string) (User, error)
	CreateUser(ctx context.Context, u *User) error
	UpdateUser(ctx context.Context, u *User) error
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
