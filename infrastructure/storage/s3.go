package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/dealerhub/dealer-ops-api/internal/config"
)

// ObjectStorage é o contrato usado pelos usecases para guardar os arquivos de
// criativo. Compatível com qualquer backend S3 (AWS, MinIO).
type ObjectStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type s3Storage struct {
	client   *s3.Client
	bucket   string
	endpoint string
}

func NewS3Storage(cfg config.Storage) (ObjectStorage, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket não configurado")
	}

	endpoint := cfg.Endpoint
	if endpoint != "" && !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar configuração da AWS")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3Storage{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: endpoint,
	}, nil
}

func (s *s3Storage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if key == "" {
		return errors.New("storage key é obrigatória")
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Erro ao enviar arquivo para o storage")
		return errors.Wrap(err, "erro ao enviar arquivo")
	}

	return nil
}

func (s *s3Storage) Download(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("storage key é obrigatória")
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Erro ao baixar arquivo do storage")
		return nil, errors.Wrap(err, "erro ao baixar arquivo")
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o corpo do arquivo")
	}

	return data, nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("storage key é obrigatória")
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Erro ao remover arquivo do storage")
		return errors.Wrap(err, "erro ao remover arquivo")
	}

	return nil
}

// PublicURL devolve a URL pública do objeto, guardada junto do registro do
// arquivo para exibição no painel.
func (s *s3Storage) PublicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
