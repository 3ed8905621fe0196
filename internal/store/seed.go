package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/nudah/clinic-portal/pkg/types"
)

// Seed installs the demo data set: two appointments, two medical
// records, four progress photos, three articles, an opening chat
// exchange and the patient profile.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	s.appointments = []*types.Appointment{
		{
			ID:        uuid.New().String(),
			Type:      "General Consultation",
			Date:      "2025-11-25",
			Time:      "10:00",
			Doctor:    "Dr. Nirmala Azalea",
			Status:    types.StatusConfirmed,
			Notes:     "Post-operative check",
			CreatedAt: now,
		},
		{
			ID:        uuid.New().String(),
			Type:      "Follow Up",
			Date:      "2025-12-02",
			Time:      "14:00",
			Doctor:    "Dr. Martin B. Robles Mejia",
			Status:    types.StatusScheduled,
			CreatedAt: now,
		},
	}

	s.records = []*types.MedicalRecord{
		{
			ID:          uuid.New().String(),
			Title:       "Initial Consultation",
			Date:        "2025-10-15",
			Description: "Initial evaluation for the procedure",
			Type:        "Consultation",
		},
		{
			ID:          uuid.New().String(),
			Title:       "Pre-operative",
			Date:        "2025-10-20",
			Description: "Lab work and preparation",
			Type:        "Exam",
		},
	}

	s.photos = []*types.Photo{
		{ID: uuid.New().String(), Category: types.PhotoBefore, Date: "2025-10-01", Notes: "Initial photo"},
		{ID: uuid.New().String(), Category: types.PhotoBefore, Date: "2025-10-02", Notes: "Side view"},
		{ID: uuid.New().String(), Category: types.PhotoAfter, Date: "2025-11-15", Notes: "Result after two weeks"},
		{ID: uuid.New().String(), Category: types.PhotoProgress, Date: "2025-11-10", Notes: "Intermediate progress"},
	}

	s.articles = []*types.Article{
		{
			ID:       uuid.New().String(),
			Title:    "Rhinoplasty: everything you need to know",
			Excerpt:  "The details behind the most popular procedure in facial aesthetic surgery.",
			Category: types.ArticleProcedures,
			ReadTime: 8,
			Content:  "Rhinoplasty is a surgical procedure that reshapes the nose to improve its appearance and/or function. It is one of the most common procedures in facial plastic surgery.",
			Date:     "2025-11-01",
		},
		{
			ID:       uuid.New().String(),
			Title:    "Post-operative recovery: a complete guide",
			Excerpt:  "Essential tips for a successful recovery after your surgery.",
			Category: types.ArticleRecovery,
			ReadTime: 10,
			Content:  "Post-operative recovery is crucial to achieving the best results. Here you will find everything you need to know.",
			Date:     "2025-11-05",
		},
		{
			ID:       uuid.New().String(),
			Title:    "Laser technology in aesthetic surgery",
			Excerpt:  "How laser technology is transforming aesthetic procedures.",
			Category: types.ArticleTechnology,
			ReadTime: 6,
			Content:  "Laser technology has transformed modern aesthetic surgery, offering more precise results and shorter recovery times.",
			Date:     "2025-11-10",
		},
	}

	s.messages = []*types.Message{
		{
			ID:        uuid.New().String(),
			Text:      "Hello, how can we help you today?",
			Sender:    types.SenderStaff,
			Timestamp: now.Add(-60 * time.Minute),
		},
		{
			ID:        uuid.New().String(),
			Text:      "I have a question about my appointment next Tuesday",
			Sender:    types.SenderPatient,
			Timestamp: now.Add(-50 * time.Minute),
		},
		{
			ID:        uuid.New().String(),
			Text:      "Of course, what would you like to know?",
			Sender:    types.SenderStaff,
			Timestamp: now.Add(-40 * time.Minute),
		},
	}

	s.profile = &types.PatientProfile{
		Name:        "Zhafira Azalea",
		Email:       "zhafira.azalea@email.com",
		Phone:       "+1 234 567 890",
		DateOfBirth: "1990-05-15",
		Address:     "123 Main Street",
	}

	s.logger.WithComponent("store").Debug("Demo data seeded")
}
