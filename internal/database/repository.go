package database

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/sumanthj/resumeforge/internal/app"
	"github.com/sumanthj/resumeforge/pkg/models"
)

// SaveResume inserts or replaces the full resume record, keyed by its id.
// Last writer wins; there is no conflict detection.
func SaveResume(resume *models.ResumeData) error {
	doc, err := json.Marshal(resume)
	if err != nil {
		return &app.PersistenceError{Op: "save", Err: err}
	}

	query := `INSERT OR REPLACE INTO resumes (id, name, email, document, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?)`
	_, err = DB.Exec(query, resume.ID, resume.ContactInfo.Name, resume.ContactInfo.Email,
		string(doc), resume.CreatedAt, resume.UpdatedAt)
	if err != nil {
		return &app.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// GetResume loads a resume by id. Returns app.ErrNotFound when absent.
func GetResume(id string) (*models.ResumeData, error) {
	query := `SELECT document FROM resumes WHERE id=?`
	var doc string
	err := DB.QueryRow(query, id).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, app.ErrNotFound
	}
	if err != nil {
		return nil, &app.PersistenceError{Op: "get", Err: err}
	}
	return decodeResume(doc)
}

// GetAllResumes lists every stored resume, most recently updated first.
func GetAllResumes() ([]*models.ResumeData, error) {
	query := `SELECT document FROM resumes ORDER BY updated_at DESC`
	rows, err := DB.Query(query)
	if err != nil {
		return nil, &app.PersistenceError{Op: "list", Err: err}
	}
	defer rows.Close()

	return scanResumes(rows)
}

// DeleteResume removes a resume by id. Deleting an absent id is not an error.
func DeleteResume(id string) error {
	query := `DELETE FROM resumes WHERE id=?`
	if _, err := DB.Exec(query, id); err != nil {
		return &app.PersistenceError{Op: "delete", Err: err}
	}
	return nil
}

// SearchResumes returns resumes whose contact name or email contains the
// query, case-insensitively.
func SearchResumes(q string) ([]*models.ResumeData, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	query := `SELECT document FROM resumes
			  WHERE lower(name) LIKE ? OR lower(email) LIKE ?
			  ORDER BY updated_at DESC`
	rows, err := DB.Query(query, pattern, pattern)
	if err != nil {
		return nil, &app.PersistenceError{Op: "search", Err: err}
	}
	defer rows.Close()

	return scanResumes(rows)
}

func scanResumes(rows *sql.Rows) ([]*models.ResumeData, error) {
	resumes := []*models.ResumeData{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, &app.PersistenceError{Op: "scan", Err: err}
		}
		resume, err := decodeResume(doc)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}
	if err := rows.Err(); err != nil {
		return nil, &app.PersistenceError{Op: "scan", Err: err}
	}
	return resumes, nil
}

func decodeResume(doc string) (*models.ResumeData, error) {
	resume := &models.ResumeData{}
	if err := json.Unmarshal([]byte(doc), resume); err != nil {
		return nil, &app.PersistenceError{Op: "decode", Err: err}
	}
	return resume, nil
}
