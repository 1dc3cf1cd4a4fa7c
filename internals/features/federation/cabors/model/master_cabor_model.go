// file: internals/features/federation/cabors/model/master_cabor_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MasterCaborModel merepresentasikan tabel master_cabors:
// daftar kanonik cabang olahraga (nama disimpan UPPERCASE).
type MasterCaborModel struct {
	// PK
	MasterCaborID uuid.UUID `gorm:"column:master_cabor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"master_cabor_id"`

	MasterCaborName       string `gorm:"column:master_cabor_name;type:varchar(100);uniqueIndex;not null" json:"master_cabor_name"`
	MasterCaborIsVerified bool   `gorm:"column:master_cabor_is_verified;not null;default:false" json:"master_cabor_is_verified"`

	MasterCaborCreatedAt time.Time `gorm:"column:master_cabor_created_at;autoCreateTime" json:"master_cabor_created_at"`
	MasterCaborUpdatedAt time.Time `gorm:"column:master_cabor_updated_at;autoUpdateTime" json:"master_cabor_updated_at"`
}

func (MasterCaborModel) TableName() string { return "master_cabors" }
