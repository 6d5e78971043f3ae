package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	sc "github.com/dmitrijs2005/sanmitsu/internal/server/config"
	"github.com/dmitrijs2005/sanmitsu/internal/server/models"
	"github.com/dmitrijs2005/sanmitsu/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const backupContentType = "application/json"

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// BackupService hands out presigned upload URLs for entry snapshots.
type BackupService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
	now         func() time.Time
}

func NewBackupService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *BackupService {
	return &BackupService{
		db:          db,
		repomanager: repomanager,
		config:      config,
		now:         time.Now,
	}
}

// BackupKey names a snapshot object of userID taken at t.
func BackupKey(userID string, t time.Time) string {
	return fmt.Sprintf("backups/%s/%s-%s.json", userID, t.UTC().Format("20060102T150405Z"), uuid.New())
}

func (s *BackupService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// GetBackupURL records a new snapshot key for userID and returns it with a
// presigned PUT URL.
func (s *BackupService) GetBackupURL(ctx context.Context, userID string) (string, string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", fmt.Errorf("error creating presign client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := BackupKey(userID, s.now())

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		ContentType: aws.String(backupContentType),
	}, s3.WithPresignExpires(s.config.BackupURLValidityDuration))
	if err != nil {
		return "", "", fmt.Errorf("error presigning upload: %w", err)
	}

	if err := s.repomanager.Backups(s.db).Create(ctx, &models.Backup{StorageKey: key, UserID: userID}); err != nil {
		return "", "", fmt.Errorf("error recording backup: %w", err)
	}

	return key, req.URL, nil
}
