package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/talentscout/scout/internal/models"
	pgrepo "github.com/talentscout/scout/internal/repositories/postgres"
	"github.com/talentscout/scout/internal/storage"
	"github.com/talentscout/scout/internal/utils"
)

type ResumeService interface {
	Upload(ctx context.Context, sessionID string, fileName string, fileSize int, mimeType string, objectName string, r resumeReader) (*models.ResumeFile, error)
}

type resumeReader interface {
	Read(p []byte) (n int, err error)
}

type resumeService struct {
	repo      pgrepo.ResumeFileRepository
	uploader  storage.Uploader
	interview InterviewService
}

func NewResumeService(repo pgrepo.ResumeFileRepository, uploader storage.Uploader, interviews InterviewService) ResumeService {
	return &resumeService{repo: repo, uploader: uploader, interview: interviews}
}

func (s *resumeService) Upload(ctx context.Context, sessionID string, fileName string, fileSize int, mimeType string, objectName string, r resumeReader) (*models.ResumeFile, error) {
	const op = "ResumeService.Upload"

	if sessionID == "" || objectName == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "session_id and object_name are required", nil)
	}
	if s.uploader == nil {
		return nil, utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	storedPath, err := s.uploader.Upload(ctx, objectName, mimeType, r)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}

	row := &models.ResumeFile{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		FileName:  fileName,
		FilePath:  storedPath,
		FileSize:  fileSize,
		MimeType:  mimeType,
		UploadAt:  time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to persist resume metadata", err)
	}

	// carried into the candidate record when the interview finalizes
	if err := s.interview.AttachResume(sessionID, storedPath); err != nil {
		return nil, err
	}

	return row, nil
}
