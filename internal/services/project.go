package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/skilltrack/internal/logger"
	"github.com/sbilibin2017/skilltrack/internal/models"
)

// Error variables
var (
	ErrClientNotFound      = errors.New("client does not exist")
	ErrProjectNotFound     = errors.New("project does not exist")
	ErrResourceNotFound    = errors.New("project resource does not exist")
	ErrInvalidAllocation   = errors.New("allocation must be between 0 and 100")
	ErrInvalidProjectSkill = errors.New("project skill name and category are required")
)

// ClientReader defines read operations for clients.
type ClientReader interface {
	GetByID(ctx context.Context, clientID uuid.UUID) (*models.ClientDB, error)
	List(ctx context.Context) ([]models.ClientDB, error)
}

// ClientWriter defines write operations for clients.
type ClientWriter interface {
	Save(ctx context.Context, name, industry, contactEmail string) (uuid.UUID, error)
	Update(ctx context.Context, clientID uuid.UUID, name, industry, contactEmail *string) error
	Delete(ctx context.Context, clientID uuid.UUID) error
}

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	GetByID(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error)
	List(ctx context.Context, clientID *uuid.UUID) ([]models.ProjectDB, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	Save(ctx context.Context, clientID uuid.UUID, name, description, status string, startDate time.Time, endDate *time.Time, leadID, deliveryLeadID *uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, projectID uuid.UUID, name, description, status *string, endDate *time.Time) error
	Delete(ctx context.Context, projectID uuid.UUID) error
}

// ResourceReader defines read operations for project resources.
type ResourceReader interface {
	GetByID(ctx context.Context, resourceID uuid.UUID) (*models.ProjectResourceDB, error)
	ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.ProjectResourceDB, error)
}

// ResourceWriter defines write operations for project resources.
type ResourceWriter interface {
	Save(ctx context.Context, projectID, userID uuid.UUID, role string, allocation int, startDate time.Time, endDate *time.Time) (uuid.UUID, error)
	Update(ctx context.Context, resourceID uuid.UUID, role *string, allocation *int, endDate *time.Time) error
	Delete(ctx context.Context, resourceID uuid.UUID) error
}

// ProjectSkillReader lists a project's required skills.
type ProjectSkillReader interface {
	ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.ProjectSkillDB, error)
}

// ProjectSkillWriter replaces a project's required-skill set.
type ProjectSkillWriter interface {
	Replace(ctx context.Context, projectID uuid.UUID, skills []models.ProjectSkillDB) error
}

// ResourceHistoryReader lists staffing audit rows.
type ResourceHistoryReader interface {
	ListByProjectID(ctx context.Context, projectID uuid.UUID) ([]models.ProjectResourceHistoryDB, error)
}

// ResourceHistoryWriter appends staffing audit rows.
type ResourceHistoryWriter interface {
	Save(ctx context.Context, row models.ProjectResourceHistoryDB) error
}

// ProjectService handles clients, projects and staffing. Every staffing
// change appends exactly one history row with the prior values captured
// before the mutating write.
type ProjectService struct {
	clientRead   ClientReader
	clientWrite  ClientWriter
	projectRead  ProjectReader
	projectWrite ProjectWriter
	resRead      ResourceReader
	resWrite     ResourceWriter
	histRead     ResourceHistoryReader
	histWrite    ResourceHistoryWriter
	skillRead    ProjectSkillReader
	skillWrite   ProjectSkillWriter
}

// NewProjectService creates a new ProjectService.
func NewProjectService(
	clientRead ClientReader,
	clientWrite ClientWriter,
	projectRead ProjectReader,
	projectWrite ProjectWriter,
	resRead ResourceReader,
	resWrite ResourceWriter,
	histRead ResourceHistoryReader,
	histWrite ResourceHistoryWriter,
	skillRead ProjectSkillReader,
	skillWrite ProjectSkillWriter,
) *ProjectService {
	return &ProjectService{
		clientRead:   clientRead,
		clientWrite:  clientWrite,
		projectRead:  projectRead,
		projectWrite: projectWrite,
		resRead:      resRead,
		resWrite:     resWrite,
		histRead:     histRead,
		histWrite:    histWrite,
		skillRead:    skillRead,
		skillWrite:   skillWrite,
	}
}

// ListClients returns all clients.
func (s *ProjectService) ListClients(ctx context.Context) ([]models.ClientDB, error) {
	return s.clientRead.List(ctx)
}

// CreateClient registers a new client company.
func (s *ProjectService) CreateClient(ctx context.Context, name, industry, contactEmail string) (uuid.UUID, error) {
	return s.clientWrite.Save(ctx, name, industry, contactEmail)
}

// UpdateClient applies a partial client edit.
func (s *ProjectService) UpdateClient(ctx context.Context, clientID uuid.UUID, name, industry, contactEmail *string) error {
	err := s.clientWrite.Update(ctx, clientID, name, industry, contactEmail)
	if isNoRows(err) {
		return ErrClientNotFound
	}
	return err
}

// DeleteClient removes a client and all its projects.
func (s *ProjectService) DeleteClient(ctx context.Context, clientID uuid.UUID) error {
	err := s.clientWrite.Delete(ctx, clientID)
	if isNoRows(err) {
		return ErrClientNotFound
	}
	return err
}

// ListProjects returns projects, optionally filtered by client.
func (s *ProjectService) ListProjects(ctx context.Context, clientID *uuid.UUID) ([]models.ProjectDB, error) {
	return s.projectRead.List(ctx, clientID)
}

// GetProject returns a single project.
func (s *ProjectService) GetProject(ctx context.Context, projectID uuid.UUID) (*models.ProjectDB, error) {
	project, err := s.projectRead.GetByID(ctx, projectID)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// CreateProject creates a project under a client. Assigning a lead or
// delivery lead staffs them automatically with a resource row and the
// matching history entry.
func (s *ProjectService) CreateProject(ctx context.Context, callerID, clientID uuid.UUID, name, description, status string, startDate time.Time, endDate *time.Time, leadID, deliveryLeadID *uuid.UUID) (uuid.UUID, error) {
	if _, err := s.clientRead.GetByID(ctx, clientID); err != nil {
		if isNoRows(err) {
			return uuid.Nil, ErrClientNotFound
		}
		return uuid.Nil, err
	}

	projectID, err := s.projectWrite.Save(ctx, clientID, name, description, status, startDate, endDate, leadID, deliveryLeadID)
	if err != nil {
		logger.Log.Errorw("failed to create project", "clientID", clientID, "error", err)
		return uuid.Nil, err
	}

	if leadID != nil {
		if err := s.staff(ctx, projectID, *leadID, "Lead", 100, startDate, nil, callerID); err != nil {
			return uuid.Nil, err
		}
	}
	if deliveryLeadID != nil && (leadID == nil || *deliveryLeadID != *leadID) {
		if err := s.staff(ctx, projectID, *deliveryLeadID, "Delivery Lead", 100, startDate, nil, callerID); err != nil {
			return uuid.Nil, err
		}
	}

	return projectID, nil
}

// UpdateProject applies a partial project edit.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID uuid.UUID, name, description, status *string, endDate *time.Time) error {
	err := s.projectWrite.Update(ctx, projectID, name, description, status, endDate)
	if isNoRows(err) {
		return ErrProjectNotFound
	}
	return err
}

// DeleteProject removes a project with its resources, history and
// required-skill links. The caller's request transaction makes the cascade
// all-or-nothing.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID uuid.UUID) error {
	err := s.projectWrite.Delete(ctx, projectID)
	if isNoRows(err) {
		return ErrProjectNotFound
	}
	return err
}

// ListResources returns a project's staffing.
func (s *ProjectService) ListResources(ctx context.Context, projectID uuid.UUID) ([]models.ProjectResourceDB, error) {
	if _, err := s.projectRead.GetByID(ctx, projectID); err != nil {
		if isNoRows(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return s.resRead.ListByProjectID(ctx, projectID)
}

// AddResource staffs a user onto a project.
func (s *ProjectService) AddResource(ctx context.Context, callerID, projectID, userID uuid.UUID, role string, allocation int, startDate time.Time, endDate *time.Time) (uuid.UUID, error) {
	if allocation < 0 || allocation > 100 {
		return uuid.Nil, ErrInvalidAllocation
	}
	if _, err := s.projectRead.GetByID(ctx, projectID); err != nil {
		if isNoRows(err) {
			return uuid.Nil, ErrProjectNotFound
		}
		return uuid.Nil, err
	}

	resourceID, err := s.resWrite.Save(ctx, projectID, userID, role, allocation, startDate, endDate)
	if err != nil {
		logger.Log.Errorw("failed to add project resource", "projectID", projectID, "userID", userID, "error", err)
		return uuid.Nil, err
	}

	if err := s.histWrite.Save(ctx, models.ProjectResourceHistoryDB{
		ProjectID:     projectID,
		UserID:        userID,
		Action:        models.ResourceAdded,
		NewRole:       &role,
		NewAllocation: &allocation,
		ChangedBy:     callerID,
	}); err != nil {
		return uuid.Nil, err
	}

	return resourceID, nil
}

// UpdateResource changes a staffing row's role, allocation or end date.
// Prior values are read before the write and recorded in history.
func (s *ProjectService) UpdateResource(ctx context.Context, callerID, resourceID uuid.UUID, role *string, allocation *int, endDate *time.Time) error {
	if allocation != nil && (*allocation < 0 || *allocation > 100) {
		return ErrInvalidAllocation
	}

	current, err := s.resRead.GetByID(ctx, resourceID)
	if err != nil {
		if isNoRows(err) {
			return ErrResourceNotFound
		}
		return err
	}

	if err := s.resWrite.Update(ctx, resourceID, role, allocation, endDate); err != nil {
		if isNoRows(err) {
			return ErrResourceNotFound
		}
		logger.Log.Errorw("failed to update project resource", "resourceID", resourceID, "error", err)
		return err
	}

	if role != nil && *role != current.Role {
		prevRole := current.Role
		if err := s.histWrite.Save(ctx, models.ProjectResourceHistoryDB{
			ProjectID:    current.ProjectID,
			UserID:       current.UserID,
			Action:       models.ResourceRoleChanged,
			PreviousRole: &prevRole,
			NewRole:      role,
			ChangedBy:    callerID,
		}); err != nil {
			return err
		}
	}
	if allocation != nil && *allocation != current.Allocation {
		prevAlloc := current.Allocation
		if err := s.histWrite.Save(ctx, models.ProjectResourceHistoryDB{
			ProjectID:          current.ProjectID,
			UserID:             current.UserID,
			Action:             models.ResourceAllocationChanged,
			PreviousAllocation: &prevAlloc,
			NewAllocation:      allocation,
			ChangedBy:          callerID,
		}); err != nil {
			return err
		}
	}

	return nil
}

// RemoveResource takes a user off a project, recording the removal with the
// staffing values held at removal time.
func (s *ProjectService) RemoveResource(ctx context.Context, callerID, resourceID uuid.UUID) error {
	current, err := s.resRead.GetByID(ctx, resourceID)
	if err != nil {
		if isNoRows(err) {
			return ErrResourceNotFound
		}
		return err
	}

	if err := s.resWrite.Delete(ctx, resourceID); err != nil {
		if isNoRows(err) {
			return ErrResourceNotFound
		}
		logger.Log.Errorw("failed to remove project resource", "resourceID", resourceID, "error", err)
		return err
	}

	prevRole := current.Role
	prevAlloc := current.Allocation
	return s.histWrite.Save(ctx, models.ProjectResourceHistoryDB{
		ProjectID:          current.ProjectID,
		UserID:             current.UserID,
		Action:             models.ResourceRemoved,
		PreviousRole:       &prevRole,
		PreviousAllocation: &prevAlloc,
		ChangedBy:          callerID,
	})
}

// ListProjectSkills returns the skills a project requires.
func (s *ProjectService) ListProjectSkills(ctx context.Context, projectID uuid.UUID) ([]models.ProjectSkillDB, error) {
	if _, err := s.projectRead.GetByID(ctx, projectID); err != nil {
		if isNoRows(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return s.skillRead.ListByProjectID(ctx, projectID)
}

// SetProjectSkills replaces a project's required-skill set. An empty set
// clears the requirements.
func (s *ProjectService) SetProjectSkills(ctx context.Context, projectID uuid.UUID, skills []models.ProjectSkillDB) error {
	for _, skill := range skills {
		if skill.Name == "" || skill.Category == "" {
			return ErrInvalidProjectSkill
		}
	}

	if _, err := s.projectRead.GetByID(ctx, projectID); err != nil {
		if isNoRows(err) {
			return ErrProjectNotFound
		}
		return err
	}

	if err := s.skillWrite.Replace(ctx, projectID, skills); err != nil {
		logger.Log.Errorw("failed to replace project skills", "projectID", projectID, "error", err)
		return err
	}

	return nil
}

// ResourceHistory returns the staffing audit trail of a project.
func (s *ProjectService) ResourceHistory(ctx context.Context, projectID uuid.UUID) ([]models.ProjectResourceHistoryDB, error) {
	if _, err := s.projectRead.GetByID(ctx, projectID); err != nil {
		if isNoRows(err) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return s.histRead.ListByProjectID(ctx, projectID)
}

// staff inserts a resource row plus its "added" history entry.
func (s *ProjectService) staff(ctx context.Context, projectID, userID uuid.UUID, role string, allocation int, startDate time.Time, endDate *time.Time, changedBy uuid.UUID) error {
	if _, err := s.resWrite.Save(ctx, projectID, userID, role, allocation, startDate, endDate); err != nil {
		logger.Log.Errorw("failed to staff project lead", "projectID", projectID, "userID", userID, "error", err)
		return err
	}
	return s.histWrite.Save(ctx, models.ProjectResourceHistoryDB{
		ProjectID:     projectID,
		UserID:        userID,
		Action:        models.ResourceAdded,
		NewRole:       &role,
		NewAllocation: &allocation,
		ChangedBy:     changedBy,
	})
}
