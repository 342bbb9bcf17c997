package service

import (
	"context"
	"errors"
	"fmt"

	"superganaderia/internal/dto"
	"superganaderia/internal/model"
	"superganaderia/internal/repository"
	"superganaderia/internal/scoring"
	"superganaderia/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PenalService administra los créditos de penal y su bonus de goles.
// Usar un penal suma floor(goles_actuales × 0.25) goles al equipo sin tocar
// el ledger de puntos — goles puede quedar por encima de
// floor(puntos / puntos_para_gol) a propósito; la divergencia queda auditada
// en AjusteGoles con fuente "penal".
type PenalService interface {
	Usar(ctx context.Context, equipoID, usadoPorID uuid.UUID) (*dto.PenalResponse, error)
	Otorgar(ctx context.Context, equipoID uuid.UUID, cantidad int) (*dto.PenalResponse, error)
	Historial(ctx context.Context, equipoID uuid.UUID) ([]dto.HistorialPenalResponse, error)
}

type penalService struct {
	penalRepo  repository.PenalRepository
	equipoRepo repository.EquipoRepository
	ajusteRepo repository.AjusteGolesRepository
	dispatcher *worker.Dispatcher
	adminEmail string
}

func NewPenalService(
	penalRepo repository.PenalRepository,
	equipoRepo repository.EquipoRepository,
	ajusteRepo repository.AjusteGolesRepository,
	dispatcher *worker.Dispatcher,
	adminEmail string,
) PenalService {
	return &penalService{
		penalRepo:  penalRepo,
		equipoRepo: equipoRepo,
		ajusteRepo: ajusteRepo,
		dispatcher: dispatcher,
		adminEmail: adminEmail,
	}
}

func (s *penalService) Usar(ctx context.Context, equipoID, usadoPorID uuid.UUID) (*dto.PenalResponse, error) {
	equipo, err := s.equipoRepo.FindByID(ctx, equipoID)
	if err != nil {
		return nil, errors.New("equipo no encontrado")
	}

	// El crédito se consume con un UPDATE condicionado: dos usos concurrentes
	// nunca gastan el mismo penal.
	if err := s.penalRepo.Consumir(ctx, equipoID); err != nil {
		return nil, err
	}

	golesAntes := equipo.Goles
	bonus := scoring.BonusPenal(golesAntes)

	if bonus > 0 {
		if err := s.equipoRepo.IncrementarGoles(ctx, equipoID, bonus); err != nil {
			return nil, fmt.Errorf("aplicando bonus de penal: %w", err)
		}
		ajuste := model.AjusteGoles{
			EquipoID: equipoID,
			Fuente:   model.FuentePenal,
			Delta:    bonus,
			Motivo:   fmt.Sprintf("penal usado con %d goles", golesAntes),
		}
		if err := s.ajusteRepo.Create(ctx, &ajuste); err != nil {
			log.Warn().Str("equipo_id", equipoID.String()).Err(err).
				Msg("no se pudo registrar el ajuste del penal")
		}
	}

	historial := model.HistorialPenal{
		EquipoID:   equipoID,
		UsadoPorID: usadoPorID,
		GolesAntes: golesAntes,
		Bonus:      bonus,
	}
	if err := s.penalRepo.CreateHistorial(ctx, &historial); err != nil {
		log.Warn().Str("equipo_id", equipoID.String()).Err(err).
			Msg("no se pudo registrar el historial del penal")
	}

	s.notificar(ctx, equipo.Nombre, golesAntes, bonus)

	penal, err := s.penalRepo.FindByEquipo(ctx, equipoID)
	disponibles := 0
	if err == nil {
		disponibles = penal.Disponibles
	}
	return &dto.PenalResponse{
		EquipoID:     equipoID.String(),
		Disponibles:  disponibles,
		GolesAntes:   golesAntes,
		Bonus:        bonus,
		GolesDespues: golesAntes + bonus,
	}, nil
}

func (s *penalService) Otorgar(ctx context.Context, equipoID uuid.UUID, cantidad int) (*dto.PenalResponse, error) {
	if cantidad <= 0 {
		return nil, errors.New("la cantidad de penales debe ser positiva")
	}
	if _, err := s.equipoRepo.FindByID(ctx, equipoID); err != nil {
		return nil, errors.New("equipo no encontrado")
	}
	if err := s.penalRepo.Otorgar(ctx, equipoID, cantidad); err != nil {
		return nil, err
	}
	penal, err := s.penalRepo.FindByEquipo(ctx, equipoID)
	if err != nil {
		return nil, err
	}
	return &dto.PenalResponse{EquipoID: equipoID.String(), Disponibles: penal.Disponibles}, nil
}

func (s *penalService) Historial(ctx context.Context, equipoID uuid.UUID) ([]dto.HistorialPenalResponse, error) {
	historial, err := s.penalRepo.ListHistorial(ctx, equipoID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.HistorialPenalResponse, len(historial))
	for i, h := range historial {
		resp[i] = dto.HistorialPenalResponse{
			ID:         h.ID.String(),
			EquipoID:   h.EquipoID.String(),
			UsadoPorID: h.UsadoPorID.String(),
			GolesAntes: h.GolesAntes,
			Bonus:      h.Bonus,
			CreatedAt:  h.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	return resp, nil
}

// notificar avisa por email al administrador del torneo (best-effort).
func (s *penalService) notificar(ctx context.Context, equipo string, golesAntes, bonus int) {
	if s.dispatcher == nil || s.adminEmail == "" {
		return
	}
	payload := worker.EmailPayload{
		To:      s.adminEmail,
		Subject: fmt.Sprintf("Penal usado por %s", equipo),
		Body:    fmt.Sprintf("El equipo %s usó un penal: %d goles + %d de bonus.", equipo, golesAntes, bonus),
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		log.Warn().Err(err).Msg("no se pudo encolar la notificación de penal")
	}
}
