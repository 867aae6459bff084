package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"asset-inventory/internal/domain"
)

var _ domain.Repository = (*Gorm)(nil)

// Gorm 数据库实现；主键由数据库自增列分配
type Gorm struct{ db *gorm.DB }

func NewGorm(db *gorm.DB) *Gorm { return &Gorm{db: db} }

func (r *Gorm) conn(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return r.db
	}
	return r.db.WithContext(ctx)
}

// Migrate 建表
func (r *Gorm) Migrate(ctx context.Context) error {
	return r.conn(ctx).AutoMigrate(&domain.User{}, &domain.Location{}, &domain.Asset{})
}

// Seed 仅在空库时写入初始数据；资产的位置外键按新分配的位置编码重映射
func (r *Gorm) Seed(ctx context.Context) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.User{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for _, u := range SeedUsers() {
			u.ID = 0
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
		}
		codes := map[int]int{}
		for _, l := range SeedLocations() {
			seedCode := l.Code
			l.Code = 0
			if err := tx.Create(&l).Error; err != nil {
				return err
			}
			codes[seedCode] = l.Code
		}
		for _, a := range SeedAssets() {
			a.Cod = 0
			a.LocationCode = codes[a.LocationCode]
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// ---------- users ----------

func (r *Gorm) ListUsers(ctx context.Context) ([]domain.User, error) {
	var us []domain.User
	if err := r.conn(ctx).Order("id").Find(&us).Error; err != nil {
		return nil, err
	}
	return us, nil
}

func (r *Gorm) FindUserByID(ctx context.Context, id int) (domain.User, error) {
	var u domain.User
	err := r.conn(ctx).First(&u, "id = ?", id).Error
	return u, notFound(err, domain.ErrUserNotFound)
}

func (r *Gorm) FindActiveUserByLogin(ctx context.Context, login string) (domain.User, error) {
	var u domain.User
	err := r.conn(ctx).Where("login = ? AND situacao = ?", login, true).Order("id").First(&u).Error
	return u, notFound(err, domain.ErrUserNotFound)
}

func (r *Gorm) CreateUser(ctx context.Context, u *domain.User) error {
	u.ID = 0
	return r.conn(ctx).Create(u).Error
}

func (r *Gorm) UpdateUser(ctx context.Context, u *domain.User) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var cur domain.User
		if err := tx.First(&cur, "id = ?", u.ID).Error; err != nil {
			return notFound(err, domain.ErrUserNotFound)
		}
		return tx.Save(u).Error
	})
}

// ---------- locations ----------

func (r *Gorm) ListLocations(ctx context.Context) ([]domain.Location, error) {
	var ls []domain.Location
	if err := r.conn(ctx).Order("cod_local").Find(&ls).Error; err != nil {
		return nil, err
	}
	return ls, nil
}

func (r *Gorm) CreateLocation(ctx context.Context, l *domain.Location) error {
	l.Code = 0
	return r.conn(ctx).Create(l).Error
}

func (r *Gorm) UpdateLocation(ctx context.Context, l *domain.Location) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var cur domain.Location
		if err := tx.First(&cur, "cod_local = ?", l.Code).Error; err != nil {
			return notFound(err, domain.ErrLocationNotFound)
		}
		return tx.Save(l).Error
	})
}

func (r *Gorm) DeleteLocation(ctx context.Context, code int) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&domain.Asset{}).Where("local_fisico = ?", code).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return domain.ErrLocationInUse
		}
		return tx.Where("cod_local = ?", code).Delete(&domain.Location{}).Error
	})
}

// ---------- assets ----------

func (r *Gorm) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	var as []domain.Asset
	if err := r.conn(ctx).Order("cod").Find(&as).Error; err != nil {
		return nil, err
	}
	return as, nil
}

func (r *Gorm) FindAssetByCode(ctx context.Context, code string) (domain.Asset, error) {
	var a domain.Asset
	err := r.conn(ctx).Where("codigo_bem = ?", code).Order("cod").First(&a).Error
	return a, notFound(err, domain.ErrAssetNotFound)
}

func (r *Gorm) CreateAsset(ctx context.Context, a *domain.Asset) error {
	a.Cod = 0
	return r.conn(ctx).Create(a).Error
}

func (r *Gorm) UpdateAsset(ctx context.Context, a *domain.Asset) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var cur domain.Asset
		if err := tx.First(&cur, "cod = ?", a.Cod).Error; err != nil {
			return notFound(err, domain.ErrAssetNotFound)
		}
		return tx.Save(a).Error
	})
}

func (r *Gorm) DeleteAsset(ctx context.Context, cod int) error {
	return r.conn(ctx).Where("cod = ?", cod).Delete(&domain.Asset{}).Error
}
