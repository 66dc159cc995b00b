package archive

// Config describes an S3-compatible bucket (AWS, MinIO, R2 ...).
type Config struct {
	Endpoint     string // empty for AWS itself
	Bucket       string
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}
