package sheet

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/mapa-clientes/internal/config"
)

func mkXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf := bytes.NewBuffer(nil)
	_, err := f.WriteTo(buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestRead(t *testing.T) {
	blob := mkXLSX(t, [][]any{
		{"CD", " Cliente ", "Nombre", "Latitud", "Longitud", "NPS"},
		{"AV46", 1001, "Tienda Uno", 3.4516, -76.532},
		{nil, nil, nil, nil, nil, nil},
		{"AV46", "1002", "", "3,45", "-76,53", "9"},
	})

	s, err := Read(bytes.NewReader(blob), "Clientes.xlsx")
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", s.Name)
	assert.Equal(t, "Clientes.xlsx", s.File)
	assert.Equal(t, []string{"CD", "Cliente", "Nombre", "Latitud", "Longitud", "NPS"}, s.Headers)
	require.Len(t, s.Rows, 2)

	first := s.Rows[0]
	assert.Equal(t, 2, first.Number)
	assert.Equal(t, "1001", first.Get("cliente"))
	assert.Equal(t, "3.4516", first.Get("LATITUD"))
	assert.Equal(t, "", first.Get("NPS"), "short rows read blank")
	assert.Equal(t, "", first.Get("NoExiste"))

	second := s.Rows[1]
	assert.Equal(t, 4, second.Number)
	assert.Equal(t, "3,45", second.Get("Latitud"))
	assert.Equal(t, "9", second.Get("NPS"))
}

func TestOpen_Local(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Clientes.xlsx")
	require.NoError(t, os.WriteFile(path, mkXLSX(t, [][]any{{"Cliente"}, {"1"}}), 0o600))

	s, err := Open(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Len(t, s.Rows, 1)

	_, err = Open(context.Background(), filepath.Join(dir, "missing.xlsx"), nil)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

type fakeObjects struct {
	blob []byte
	in   *s3.GetObjectInput
	err  error
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.blob))}, nil
}

func TestOpen_S3(t *testing.T) {
	objects := &fakeObjects{blob: mkXLSX(t, [][]any{{"Cliente"}, {"1"}, {"2"}})}

	s, err := Open(context.Background(), "s3://planillas/2024/Clientes.xlsx", objects)
	require.NoError(t, err)
	assert.Len(t, s.Rows, 2)
	assert.Equal(t, "Clientes.xlsx", s.File)
	assert.Equal(t, "planillas", *objects.in.Bucket)
	assert.Equal(t, "2024/Clientes.xlsx", *objects.in.Key)

	_, err = Open(context.Background(), "s3://planillas/x.xlsx", nil)
	assert.Error(t, err)

	_, err = Open(context.Background(), "s3://planillas/x.xlsx", &fakeObjects{err: eris.New("denied")})
	assert.Error(t, err)
}

func TestParseS3(t *testing.T) {
	tests := []struct {
		src    string
		bucket string
		key    string
		ok     bool
	}{
		{"s3://b/k.xlsx", "b", "k.xlsx", true},
		{"s3://b/dir/k.xlsx", "b", "dir/k.xlsx", true},
		{"s3://b", "", "", false},
		{"s3:///k", "", "", false},
		{"data/Clientes.xlsx", "", "", false},
	}
	for _, tt := range tests {
		bucket, key, ok := parseS3(tt.src)
		assert.Equal(t, tt.ok, ok, tt.src)
		assert.Equal(t, tt.bucket, bucket, tt.src)
		assert.Equal(t, tt.key, key, tt.src)
	}
}

func TestNewS3Client(t *testing.T) {
	c := NewS3Client(configFor("https://minio.local:9000"))
	assert.NotNil(t, c)
}

func configFor(endpoint string) config.AWSConfig {
	return config.AWSConfig{Region: "us-east-1", AccessKeyID: "a", SecretAccessKey: "b", Endpoint: endpoint}
}
