package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Sheets SheetsConfig
	Store  StoreConfig
	Bulk   BulkConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SheetsConfig orígenes de datos: los dos exports xlsx y el TTL del snapshot en memoria.
// Las URLs aceptan http(s):// o una ruta local (útil en desarrollo y tests).
type SheetsConfig struct {
	InventoryURL string
	MasterURL    string
	TTLSeconds   int // vida del snapshot cacheado; 0 = recargar en cada petición
}

// StoreConfig ubicación de los archivos CSV persistentes (fix log y tendencias).
type StoreConfig struct {
	LogDir               string
	TrendIntervalMinutes int // auto-snapshot si el último es más viejo que esto
}

// BulkConfig capacidad máxima de pallets por zona de piso (A..I).
// Se puede sobreescribir por zona con BULK_CAPACITY_A, BULK_CAPACITY_B, etc.
type BulkConfig struct {
	Capacity map[string]int
}

// defaultBulkCapacity zona A admite 5 pallets, el resto 4.
var defaultBulkCapacity = map[string]int{
	"A": 5, "B": 4, "C": 4, "D": 4, "E": 4, "F": 4, "G": 4, "H": 4, "I": 4,
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, INVENTORY_SHEET_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	capacity := make(map[string]int, len(defaultBulkCapacity))
	for zone, def := range defaultBulkCapacity {
		capacity[zone] = getInt(v, "BULK_CAPACITY_"+zone, def)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "bin-helper"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Sheets: SheetsConfig{
			InventoryURL: getString(v, "INVENTORY_SHEET_URL", "ON_HAND_INVENTORY.xlsx"),
			MasterURL:    getString(v, "MASTER_SHEET_URL", "Empty Bin Formula.xlsx"),
			TTLSeconds:   getInt(v, "SNAPSHOT_TTL_SECONDS", 120),
		},
		Store: StoreConfig{
			LogDir:               getString(v, "LOG_DIR", "./logs"),
			TrendIntervalMinutes: getInt(v, "TREND_INTERVAL_MINUTES", 60),
		},
		Bulk: BulkConfig{Capacity: capacity},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
