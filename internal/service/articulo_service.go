package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/model"
	"github.com/Simoleans/profit/internal/repository"
)

const (
	articulosPorPagina = 15
	maxAutocomplete    = 20
	maxPromociones     = 35
)

// ArticuloService is the read-only catalog surface. Articles are mastered in
// the ERP; this application never writes them.
type ArticuloService interface {
	Listar(ctx context.Context, filter dto.ArticuloFilter) (*dto.ArticuloListResponse, error)
	Obtener(ctx context.Context, coArt string) (*dto.ArticuloResponse, error)
	Autocomplete(ctx context.Context, term string) ([]dto.AutocompleteItem, error)
	Promociones(ctx context.Context) ([]dto.ArticuloResponse, error)
	Categorias(ctx context.Context) ([]dto.CategoriaResponse, error)
	Lineas(ctx context.Context) ([]dto.LineaResponse, error)
	Sublineas(ctx context.Context) ([]dto.SublineaResponse, error)
}

type articuloService struct {
	repo repository.ArticuloRepository
}

func NewArticuloService(repo repository.ArticuloRepository) ArticuloService {
	return &articuloService{repo: repo}
}

func (s *articuloService) Listar(ctx context.Context, filter dto.ArticuloFilter) (*dto.ArticuloListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	articulos, total, err := s.repo.List(ctx, filter, articulosPorPagina)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ArticuloResponse, 0, len(articulos))
	for i := range articulos {
		rows = append(rows, *articuloToResponse(&articulos[i]))
	}
	return &dto.ArticuloListResponse{Data: rows, Total: total, Page: filter.Page, Limit: articulosPorPagina}, nil
}

func (s *articuloService) Obtener(ctx context.Context, coArt string) (*dto.ArticuloResponse, error) {
	a, err := s.repo.FindByCoArt(ctx, strings.TrimSpace(coArt))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("articulo no encontrado")
		}
		return nil, err
	}
	return articuloToResponse(a), nil
}

func (s *articuloService) Autocomplete(ctx context.Context, term string) ([]dto.AutocompleteItem, error) {
	if strings.TrimSpace(term) == "" {
		return []dto.AutocompleteItem{}, nil
	}
	articulos, err := s.repo.Autocomplete(ctx, strings.TrimSpace(term), maxAutocomplete)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AutocompleteItem, 0, len(articulos))
	for _, a := range articulos {
		items = append(items, dto.AutocompleteItem{
			Codigo:      strings.TrimSpace(a.CoArt),
			Descripcion: strings.TrimSpace(a.ArtDes),
		})
	}
	return items, nil
}

func (s *articuloService) Promociones(ctx context.Context) ([]dto.ArticuloResponse, error) {
	articulos, err := s.repo.Promociones(ctx, maxPromociones)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ArticuloResponse, 0, len(articulos))
	for i := range articulos {
		rows = append(rows, *articuloToResponse(&articulos[i]))
	}
	return rows, nil
}

func (s *articuloService) Categorias(ctx context.Context) ([]dto.CategoriaResponse, error) {
	cats, err := s.repo.Categorias(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.CategoriaResponse, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, dto.CategoriaResponse{
			CoCat:  strings.TrimSpace(c.CoCat),
			CatDes: strings.TrimSpace(c.CatDes),
		})
	}
	return rows, nil
}

func (s *articuloService) Lineas(ctx context.Context) ([]dto.LineaResponse, error) {
	lineas, err := s.repo.Lineas(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.LineaResponse, 0, len(lineas))
	for _, l := range lineas {
		rows = append(rows, dto.LineaResponse{
			CoLin:  strings.TrimSpace(l.CoLin),
			LinDes: strings.TrimSpace(l.LinDes),
		})
	}
	return rows, nil
}

func (s *articuloService) Sublineas(ctx context.Context) ([]dto.SublineaResponse, error) {
	subs, err := s.repo.Sublineas(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.SublineaResponse, 0, len(subs))
	for _, sl := range subs {
		rows = append(rows, dto.SublineaResponse{
			CoSubl:  strings.TrimSpace(sl.CoSubl),
			SublDes: strings.TrimSpace(sl.SublDes),
		})
	}
	return rows, nil
}

func articuloToResponse(a *model.Articulo) *dto.ArticuloResponse {
	linea := ""
	if a.Linea != nil {
		linea = strings.TrimSpace(a.Linea.LinDes)
	}
	return &dto.ArticuloResponse{
		CoArt:    strings.TrimSpace(a.CoArt),
		ArtDes:   strings.TrimSpace(a.ArtDes),
		CoLin:    strings.TrimSpace(a.CoLin),
		Linea:    linea,
		CoCat:    strings.TrimSpace(a.CoCat),
		StockAct: a.StockAct,
		PrecVta1: a.PrecVta1,
		UniVenta: strings.TrimSpace(a.UniVenta),
	}
}
