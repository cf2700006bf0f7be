package model

// AdminCredential 管理员共享密码摘要
type AdminCredential struct {
	PasswordHash string `db:"password_hash" json:"passwordHash" bson:"passwordHash"`
}
