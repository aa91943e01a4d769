// seed carga los datos iniciales del pañol: usuarios, almacenes y, opcionalmente,
// la lista de ubicaciones exportada del sistema anterior (texto Latin-1, un código por línea).
//
// Uso: go run ./cmd/seed [ruta/ubicaciones.txt]
// Es idempotente: lo que ya existe se deja igual.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/panol-api/internal/application/dto"
	"github.com/jhoicas/panol-api/internal/application/usecase"
	"github.com/jhoicas/panol-api/internal/domain"
	"github.com/jhoicas/panol-api/internal/domain/entity"
	"github.com/jhoicas/panol-api/internal/infrastructure/postgres"
	"github.com/jhoicas/panol-api/pkg/config"
	"github.com/jhoicas/panol-api/pkg/logger"
)

var seedUsers = []dto.CreateUserRequest{
	{Username: "ezequiel", Password: usecase.DefaultPassword, Role: entity.RoleKeyUser},
	{Username: "operador", Password: usecase.DefaultPassword, Role: entity.RoleOperador},
}

var seedWarehouses = []dto.CreateWarehouseRequest{
	{Code: "101", Name: "Productos de Insumo"},
	{Code: "800", Name: "Productos de Mantenimiento"},
}

// system ejecuta el seed con permisos de keyuser.
var system = entity.Actor{Username: "seed", Privileged: true}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	users := usecase.NewUserUseCase(postgres.NewUserRepository(pool))
	catalog := usecase.NewCatalogUseCase(
		postgres.NewWarehouseRepository(pool),
		postgres.NewLocationRepository(pool),
		postgres.NewSupplierRepository(pool),
		cfg.Ledger.MaxPage, log,
	)

	for _, u := range seedUsers {
		_, err := users.Create(ctx, system, u)
		if skip(err) {
			log.Fatal().Err(err).Str("username", u.Username).Msg("crear usuario")
		}
	}
	for _, w := range seedWarehouses {
		_, err := catalog.CreateWarehouse(ctx, system, w)
		if skip(err) {
			log.Fatal().Err(err).Str("code", w.Code).Msg("crear almacén")
		}
	}

	if len(os.Args) < 2 {
		log.Info().Msg("seed completo (sin archivo de ubicaciones)")
		return
	}
	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("abrir archivo de ubicaciones")
	}
	defer f.Close()

	codes, err := ReadLocationCodes(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer ubicaciones")
	}
	created := 0
	for _, code := range codes {
		_, err := catalog.CreateLocation(ctx, system, dto.CreateLocationRequest{Code: code})
		if skip(err) {
			log.Fatal().Err(err).Str("code", code).Msg("crear ubicación")
		}
		if err == nil {
			created++
		}
	}
	log.Info().Int("leidas", len(codes)).Int("creadas", created).Msg("seed completo")
}

// skip indica si err es un error real (los duplicados se ignoran).
func skip(err error) bool {
	return err != nil && !errors.Is(err, domain.ErrDuplicateKey)
}

// ReadLocationCodes decodifica r como ISO-8859-1 y devuelve un código por línea no vacía.
// Las letras sueltas A-H son encabezados de pasillo, no ubicaciones.
func ReadLocationCodes(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	seen := make(map[string]struct{})
	var out []string
	for sc.Scan() {
		code := strings.TrimSpace(sc.Text())
		if code == "" || isAisleHeader(code) {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out, sc.Err()
}

func isAisleHeader(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'H'
}
