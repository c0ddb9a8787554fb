package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBrand(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Brand
		wantErr bool
	}{
		{
			name:  "Brand ford é aceito",
			input: "ford",
			want:  BrandFord,
		},
		{
			name:  "Brand tofas é aceito",
			input: "tofas",
			want:  BrandTofas,
		},
		{
			name:    "Brand desconhecido é recusado",
			input:   "fiat",
			wantErr: true,
		},
		{
			name:    "String vazia é recusada",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Caixa alta não é normalizada",
			input:   "FORD",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBrand(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Run("Contexto sem brand retorna ErrNoBrand", func(t *testing.T) {
		_, err := FromContext(context.Background())

		assert.ErrorIs(t, err, ErrNoBrand)
	})

	t.Run("Contexto com brand retorna o brand registrado", func(t *testing.T) {
		ctx := WithBrand(context.Background(), BrandTofas)

		brand, err := FromContext(ctx)

		assert.NoError(t, err)
		assert.Equal(t, BrandTofas, brand)
	})

	t.Run("WithBrand não altera o contexto pai", func(t *testing.T) {
		parent := context.Background()
		_ = WithBrand(parent, BrandFord)

		_, err := FromContext(parent)

		assert.ErrorIs(t, err, ErrNoBrand)
	})
}

func TestBrands(t *testing.T) {
	assert.Equal(t, []Brand{BrandFord, BrandTofas}, Brands())
}
