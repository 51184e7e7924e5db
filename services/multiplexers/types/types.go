package types

// StorageProvider selects where session tokens and profile state are kept
type StorageProvider string

const (
	Cookie StorageProvider = "cookie"
	Redis  StorageProvider = "redis"
	Mongo  StorageProvider = "mongo"
)
