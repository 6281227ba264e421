// internal/service/topic_service.go
package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"vietcards/internal/middleware"
	"vietcards/internal/model"
	"vietcards/internal/repository"
)

// TopicService loads vocabulary CSV files into the card store.
type TopicService interface {
	ListTopics(ctx context.Context) ([]model.TopicInfo, error)
	LoadTopic(ctx context.Context, filename string, clearExisting bool) (*model.TopicLoadResult, error)
	SyncAllTopics(ctx context.Context) (*model.SyncResult, error)
}

type topicService struct {
	db       *gorm.DB
	cardRepo repository.CardRepository
	vocabDir string
}

func NewTopicService(db *gorm.DB, cardRepo repository.CardRepository, vocabDir string) TopicService {
	return &topicService{db: db, cardRepo: cardRepo, vocabDir: vocabDir}
}

// topicRow is one parsed and validated CSV row.
type topicRow struct {
	Vietnamese      string
	English         string
	Category        string
	DifficultyLevel int
}

var titleCaser = cases.Title(language.English)

func (s *topicService) ListTopics(ctx context.Context) ([]model.TopicInfo, error) {
	logger := middleware.GetLogger(ctx)

	entries, err := os.ReadDir(s.vocabDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.TopicInfo{}, nil
		}
		logger.Error("Error reading vocab directory", "error", err, "dir", s.vocabDir)
		return nil, model.ErrInternalServer
	}

	topics := make([]model.TopicInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		topics = append(topics, model.TopicInfo{
			Name:     titleCaser.String(topicBaseName(entry.Name())),
			Filename: entry.Name(),
		})
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Filename < topics[j].Filename })

	return topics, nil
}

func (s *topicService) LoadTopic(ctx context.Context, filename string, clearExisting bool) (*model.TopicLoadResult, error) {
	logger := middleware.GetLogger(ctx).With("filename", filename)

	// Topic files are addressed by bare name only; no path traversal.
	if filename == "" || filename != filepath.Base(filename) {
		return nil, model.NewAppError("INVALID_FILENAME", "filename must not contain path separators.", "filename", model.ErrInvalidInput)
	}

	rows, rejected, err := parseTopicFile(filepath.Join(s.vocabDir, filename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "Vocabulary file not found: "+filename, "filename", model.ErrNotFound)
		}
		logger.Error("Error parsing topic file", "error", err)
		return nil, model.NewAppError("INVALID_TOPIC_FILE", "Could not parse vocabulary file: "+filename, "filename", model.ErrInvalidInput)
	}

	result := &model.TopicLoadResult{Filename: filename, Rejected: rejected}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if clearExisting {
			deleted, err := s.cardRepo.DeleteAll(ctx, tx)
			if err != nil {
				return model.ErrInternalServer
			}
			logger.Warn("Cleared existing cards before load", "cards_deleted", deleted)
		}

		for _, row := range rows {
			exists, err := s.cardRepo.PairExists(ctx, tx, row.Vietnamese, row.English)
			if err != nil {
				return model.ErrInternalServer
			}
			if exists {
				// Upsert-skip: existing pairs are never overwritten.
				result.Skipped++
				continue
			}

			card := &model.Card{
				Vietnamese:      row.Vietnamese,
				English:         row.English,
				Category:        row.Category,
				DifficultyLevel: row.DifficultyLevel,
			}
			if err := s.cardRepo.Create(ctx, tx, card); err != nil {
				return model.ErrInternalServer
			}
			result.Inserted++
		}
		return nil
	})
	if err != nil {
		logger.Error("Transaction failed for LoadTopic", "error", err)
		return nil, err
	}

	logger.Info("Topic loaded",
		"inserted", result.Inserted,
		"skipped", result.Skipped,
		"rejected", result.Rejected,
	)
	return result, nil
}

func (s *topicService) SyncAllTopics(ctx context.Context) (*model.SyncResult, error) {
	logger := middleware.GetLogger(ctx)

	topics, err := s.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.SyncResult{
		Files:  make(map[string]model.TopicLoadResult, len(topics)),
		Errors: make(map[string]string),
	}

	// One bad file does not abort the batch; it is reported per file.
	for _, topic := range topics {
		fileResult, err := s.LoadTopic(ctx, topic.Filename, false)
		if err != nil {
			logger.Warn("Skipping topic file that failed to load", "filename", topic.Filename, "error", err)
			result.Errors[topic.Filename] = err.Error()
			continue
		}
		result.Files[topic.Filename] = *fileResult
	}
	if len(result.Errors) == 0 {
		result.Errors = nil
	}

	return result, nil
}

// parseTopicFile reads one vocabulary CSV. Expected header:
// vietnamese,english[,category][,difficulty_level]. Rows missing either
// word, or with a non-integer difficulty, are counted as rejected rather
// than failing the file. A blank category defaults to the file's base name
// with underscores and hyphens turned into spaces.
func parseTopicFile(path string) ([]topicRow, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return []topicRow{}, 0, nil
		}
		return nil, 0, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	defaultCategory := topicBaseName(filepath.Base(path))

	var rows []topicRow
	rejected := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		vietnamese := field("vietnamese")
		english := field("english")
		if vietnamese == "" || english == "" {
			rejected++
			continue
		}

		difficulty := 1
		if raw := field("difficulty_level"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				rejected++
				continue
			}
			difficulty = parsed
		}

		category := field("category")
		if category == "" {
			category = defaultCategory
		}

		rows = append(rows, topicRow{
			Vietnamese:      vietnamese,
			English:         english,
			Category:        category,
			DifficultyLevel: difficulty,
		})
	}

	return rows, rejected, nil
}

// topicBaseName turns "common_words.csv" into "common words".
func topicBaseName(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	stem = strings.ReplaceAll(stem, "_", " ")
	stem = strings.ReplaceAll(stem, "-", " ")
	return stem
}
