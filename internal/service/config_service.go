package service

import (
	"context"
	"strconv"

	"superganaderia/internal/dto"
	"superganaderia/internal/model"
	"superganaderia/internal/repository"
	"superganaderia/internal/scoring"

	"github.com/rs/zerolog/log"
)

// ConfigService resuelve los parámetros del concurso con fallback a defaults.
// Una clave ausente o mal formada nunca es fatal: se loguea como warning
// (hueco administrativo) y se sigue con el valor por defecto.
type ConfigService interface {
	PuntosParaGol(ctx context.Context) int
	// PoliticaCliente devuelve la política vigente y, para "plano",
	// los puntos fijos por cliente.
	PoliticaCliente(ctx context.Context) (politica string, puntosPorCliente int)
	Obtener(ctx context.Context, clave string) (*dto.ConfigResponse, error)
	Actualizar(ctx context.Context, clave, valor string) (*dto.ConfigResponse, error)
	Listar(ctx context.Context) ([]dto.ConfigResponse, error)
}

type configService struct {
	repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) ConfigService {
	return &configService{repo: repo}
}

func (s *configService) PuntosParaGol(ctx context.Context) int {
	return s.intConDefault(ctx, model.ClavePuntosParaGol, scoring.PuntosParaGolDefault)
}

func (s *configService) PoliticaCliente(ctx context.Context) (string, int) {
	politica, err := s.repo.Get(ctx, model.ClavePoliticaCliente)
	if err != nil || (politica != model.PoliticaLote && politica != model.PoliticaPlano) {
		if err != nil {
			log.Warn().Str("clave", model.ClavePoliticaCliente).Err(err).
				Msg("config ausente, usando política de lote")
		}
		politica = model.PoliticaLote
	}
	puntosPorCliente := s.intConDefault(ctx, model.ClavePuntosPorCliente, 100)
	return politica, puntosPorCliente
}

// intConDefault lee una clave numérica; ausente, no numérica o ≤ 0 cae al default.
func (s *configService) intConDefault(ctx context.Context, clave string, def int) int {
	valor, err := s.repo.Get(ctx, clave)
	if err != nil {
		log.Warn().Str("clave", clave).Int("default", def).Err(err).
			Msg("config ausente, usando default")
		return def
	}
	n, err := strconv.Atoi(valor)
	if err != nil || n <= 0 {
		log.Warn().Str("clave", clave).Str("valor", valor).Int("default", def).
			Msg("config inválida, usando default")
		return def
	}
	return n
}

func (s *configService) Obtener(ctx context.Context, clave string) (*dto.ConfigResponse, error) {
	valor, err := s.repo.Get(ctx, clave)
	if err != nil {
		return nil, err
	}
	return &dto.ConfigResponse{Clave: clave, Valor: valor}, nil
}

func (s *configService) Actualizar(ctx context.Context, clave, valor string) (*dto.ConfigResponse, error) {
	if err := s.repo.Set(ctx, clave, valor); err != nil {
		return nil, err
	}
	return &dto.ConfigResponse{Clave: clave, Valor: valor}, nil
}

func (s *configService) Listar(ctx context.Context) ([]dto.ConfigResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ConfigResponse, len(items))
	for i, c := range items {
		resp[i] = dto.ConfigResponse{Clave: c.Clave, Valor: c.Valor}
	}
	return resp, nil
}
