package service

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Simoleans/profit/internal/apierror"
	"github.com/Simoleans/profit/internal/dto"
	"github.com/Simoleans/profit/internal/infra"
	"github.com/Simoleans/profit/internal/model"
	"github.com/Simoleans/profit/internal/repository"
)

const clientesPorPagina = 15

type ClienteService interface {
	Registrar(ctx context.Context, coVen string, req dto.RegistrarClienteRequest) (*dto.ClienteResponse, error)
	ActualizarPendiente(ctx context.Context, coVen string, rol model.Rol, rif string, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Desactivar(ctx context.Context, coCli string) error
	Listar(ctx context.Context, coVen string, rol model.Rol, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Autocomplete(ctx context.Context, coVen string, rol model.Rol, term string) ([]dto.AutocompleteItem, error)
	Existe(ctx context.Context, coCli string) (bool, error)
	AdjuntarDocumento(ctx context.Context, rif, fileName, mimeType string, size int64, content io.Reader) (*dto.MediaResponse, error)
	Documentos(ctx context.Context, rif string) ([]dto.MediaResponse, error)
	RutaDocumento(ctx context.Context, mediaID string) (path, fileName string, err error)
}

type clienteService struct {
	repo      repository.ClienteRepository
	mediaRepo repository.MediaRepository
	docs      *infra.DocStore
}

func NewClienteService(repo repository.ClienteRepository, mediaRepo repository.MediaRepository, docs *infra.DocStore) ClienteService {
	return &clienteService{repo: repo, mediaRepo: mediaRepo, docs: docs}
}

// Registrar creates a pending client keyed by rif. It stays in clientes_temp
// with an empty co_cli until the back office promotes it into the ERP.
func (s *clienteService) Registrar(ctx context.Context, coVen string, req dto.RegistrarClienteRequest) (*dto.ClienteResponse, error) {
	rif := strings.ToUpper(strings.TrimSpace(req.Rif))
	enUso, err := s.repo.RifEnUso(ctx, rif)
	if err != nil {
		return nil, err
	}
	if enUso {
		return nil, apierror.Conflict("el rif ya esta registrado", nil)
	}

	c := &model.ClienteTemp{
		Rif:       rif,
		CliDes:    strings.TrimSpace(req.CliDes),
		Direc1:    req.Direc1,
		Telefonos: req.Telefonos,
		Email:     strings.TrimSpace(req.Email),
		Respons:   req.Respons,
		CoVen:     coVen,
		Status:    true,
	}
	if err := s.repo.CreateTemp(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflict("el rif ya esta registrado", err)
		}
		return nil, err
	}
	return tempToResponse(c), nil
}

func (s *clienteService) ActualizarPendiente(ctx context.Context, coVen string, rol model.Rol, rif string, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindTempByRif(ctx, strings.ToUpper(strings.TrimSpace(rif)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("cliente pendiente no encontrado")
		}
		return nil, err
	}
	if rol == model.RolVendedor && strings.TrimSpace(c.CoVen) != strings.TrimSpace(coVen) {
		return nil, apierror.NotFound("cliente pendiente no encontrado")
	}

	if req.CliDes != "" {
		c.CliDes = strings.TrimSpace(req.CliDes)
	}
	if req.Direc1 != "" {
		c.Direc1 = req.Direc1
	}
	if req.Telefonos != "" {
		c.Telefonos = req.Telefonos
	}
	if req.Email != "" {
		c.Email = strings.TrimSpace(req.Email)
	}
	if req.Respons != "" {
		c.Respons = req.Respons
	}
	if err := s.repo.UpdateTemp(ctx, c); err != nil {
		return nil, err
	}
	return tempToResponse(c), nil
}

func (s *clienteService) Desactivar(ctx context.Context, coCli string) error {
	exists, err := s.repo.Exists(ctx, coCli)
	if err != nil {
		return err
	}
	if !exists {
		return apierror.NotFound("cliente no encontrado")
	}
	return s.repo.Desactivar(ctx, coCli)
}

func (s *clienteService) Listar(ctx context.Context, coVen string, rol model.Rol, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	scope := scopeCoVen(rol, coVen)

	if filter.Tab == "temp" {
		temps, total, err := s.repo.ListTemp(ctx, scope, filter, clientesPorPagina)
		if err != nil {
			return nil, err
		}
		rows := make([]dto.ClienteResponse, 0, len(temps))
		for i := range temps {
			rows = append(rows, *tempToResponse(&temps[i]))
		}
		return &dto.ClienteListResponse{Data: rows, Total: total, Page: filter.Page, Limit: clientesPorPagina}, nil
	}

	clientes, total, err := s.repo.List(ctx, scope, filter, clientesPorPagina)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		rows = append(rows, *clienteToResponse(&clientes[i]))
	}
	return &dto.ClienteListResponse{Data: rows, Total: total, Page: filter.Page, Limit: clientesPorPagina}, nil
}

func (s *clienteService) Autocomplete(ctx context.Context, coVen string, rol model.Rol, term string) ([]dto.AutocompleteItem, error) {
	if strings.TrimSpace(term) == "" {
		return []dto.AutocompleteItem{}, nil
	}
	clientes, err := s.repo.Autocomplete(ctx, scopeCoVen(rol, coVen), strings.TrimSpace(term), 20)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AutocompleteItem, 0, len(clientes))
	for _, c := range clientes {
		items = append(items, dto.AutocompleteItem{
			Codigo:      strings.TrimSpace(c.CoCli),
			Descripcion: strings.TrimSpace(c.CliDes),
		})
	}
	return items, nil
}

func (s *clienteService) Existe(ctx context.Context, coCli string) (bool, error) {
	return s.repo.Exists(ctx, strings.TrimSpace(coCli))
}

// ── Documentos adjuntos ──────────────────────────────────────────────────────

func (s *clienteService) AdjuntarDocumento(ctx context.Context, rif, fileName, mimeType string, size int64, content io.Reader) (*dto.MediaResponse, error) {
	rif = strings.ToUpper(strings.TrimSpace(rif))
	if _, err := s.repo.FindTempByRif(ctx, rif); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("cliente pendiente no encontrado")
		}
		return nil, err
	}

	key, err := s.docs.Save(fileName, content)
	if err != nil {
		return nil, apierror.Transient("no se pudo guardar el documento", err)
	}

	m := &model.Media{
		ID:         uuid.New(),
		Rif:        rif,
		FileName:   fileName,
		StorageKey: key,
		MimeType:   mimeType,
		Size:       size,
	}
	if err := s.mediaRepo.Create(ctx, m); err != nil {
		_ = s.docs.Remove(key)
		return nil, err
	}
	return mediaToResponse(m), nil
}

func (s *clienteService) Documentos(ctx context.Context, rif string) ([]dto.MediaResponse, error) {
	media, err := s.mediaRepo.ListByRif(ctx, strings.ToUpper(strings.TrimSpace(rif)))
	if err != nil {
		return nil, err
	}
	rows := make([]dto.MediaResponse, 0, len(media))
	for i := range media {
		rows = append(rows, *mediaToResponse(&media[i]))
	}
	return rows, nil
}

func (s *clienteService) RutaDocumento(ctx context.Context, mediaID string) (string, string, error) {
	id, err := uuid.Parse(mediaID)
	if err != nil {
		return "", "", apierror.Validation("id de documento invalido", nil)
	}
	m, err := s.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", apierror.NotFound("documento no encontrado")
		}
		return "", "", err
	}
	path, err := s.docs.Path(m.StorageKey)
	if err != nil {
		return "", "", err
	}
	return path, m.FileName, nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		CoCli:     strings.TrimSpace(c.CoCli),
		Rif:       strings.TrimSpace(c.Rif),
		CliDes:    strings.TrimSpace(c.CliDes),
		Direc1:    strings.TrimSpace(c.Direc1),
		Telefonos: strings.TrimSpace(c.Telefonos),
		Email:     strings.TrimSpace(c.Email),
		Respons:   strings.TrimSpace(c.Respons),
		CoVen:     strings.TrimSpace(c.CoVen),
		Inactivo:  c.Inactivo,
	}
}

func tempToResponse(c *model.ClienteTemp) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		Rif:       c.Rif,
		CliDes:    c.CliDes,
		Direc1:    c.Direc1,
		Telefonos: c.Telefonos,
		Email:     c.Email,
		Respons:   c.Respons,
		CoVen:     strings.TrimSpace(c.CoVen),
		Pendiente: true,
	}
}

func mediaToResponse(m *model.Media) *dto.MediaResponse {
	return &dto.MediaResponse{
		ID:       m.ID.String(),
		FileName: m.FileName,
		MimeType: m.MimeType,
		Size:     m.Size,
	}
}
