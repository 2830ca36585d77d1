package excel

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/entity"
	"github.com/CarlosJTLogistics/bin-helper-api/internal/domain/repository"
	"github.com/CarlosJTLogistics/bin-helper-api/pkg/logger"
)

// Verificar en tiempo de compilación que SheetSource implementa SnapshotSource.
var _ repository.SnapshotSource = (*SheetSource)(nil)

// masterSheetName hoja esperada en el xlsx del listado maestro; si no existe se usa la primera.
const masterSheetName = "Master Locations"

// SheetSource adaptador que lee los dos exports xlsx por URL http(s) o ruta local.
// Usa net/http de la librería estándar; el parseo es con excelize.
type SheetSource struct {
	inventoryURL string
	masterURL    string
	httpClient   *http.Client
	log          *logger.Logger
}

// NewSheetSource construye el adaptador. Las URLs pueden ser http(s):// o rutas locales.
func NewSheetSource(inventoryURL, masterURL string, log *logger.Logger) *SheetSource {
	return &SheetSource{
		inventoryURL: inventoryURL,
		masterURL:    masterURL,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
		log: log.ForComponent("excel"),
	}
}

// FetchInventory descarga y parsea el export de inventario (primera hoja).
// Celdas Qty/PalletCount malformadas o ausentes se coaccionan a 0; nunca es fatal.
func (s *SheetSource) FetchInventory(ctx context.Context) ([]entity.InventoryRecord, string, error) {
	start := time.Now()
	data, err := s.fetch(ctx, s.inventoryURL)
	if err != nil {
		return nil, "", fmt.Errorf("%w: inventario: %v", domain.ErrSourceFetch, err)
	}
	sum := md5.Sum(data)
	checksum := hex.EncodeToString(sum[:])

	rows, err := firstSheetRows(data, "")
	if err != nil {
		return nil, "", fmt.Errorf("%w: inventario: %v", domain.ErrSheetFormat, err)
	}
	records := parseInventoryRows(rows)
	s.log.Debug().
		Int("rows", len(records)).
		Str("checksum", checksum).
		Dur("elapsed", time.Since(start)).
		Msg("inventario cargado")
	return records, checksum, nil
}

// FetchMasterLocations descarga el listado maestro: hoja "Master Locations" (o la
// primera), columna cuyo encabezado contiene "location" (o la columna 0), fila 0 de
// encabezado excluida. Devuelve valores recortados y deduplicados.
func (s *SheetSource) FetchMasterLocations(ctx context.Context) ([]string, error) {
	data, err := s.fetch(ctx, s.masterURL)
	if err != nil {
		return nil, fmt.Errorf("%w: maestro: %v", domain.ErrSourceFetch, err)
	}
	rows, err := firstSheetRows(data, masterSheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: maestro: %v", domain.ErrSheetFormat, err)
	}
	locations := parseMasterRows(rows)
	s.log.Debug().Int("locations", len(locations)).Msg("listado maestro cargado")
	return locations, nil
}

// fetch obtiene el contenido del recurso: GET con context para http(s), lectura directa
// para rutas locales.
func (s *SheetSource) fetch(ctx context.Context, url string) ([]byte, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("status %d en %s", resp.StatusCode, url)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(url)
}

// firstSheetRows abre el workbook y devuelve las filas de la hoja pedida; si el nombre
// está vacío o la hoja no existe, usa la primera del libro.
func firstSheetRows(data []byte, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	list := f.GetSheetList()
	if len(list) == 0 {
		return nil, fmt.Errorf("workbook sin hojas")
	}
	name := list[0]
	if sheet != "" {
		if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
			name = sheet
		}
	}
	return f.GetRows(name)
}
