// Curriculum - Course Content Retrieval and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/curriculum

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/curriculum/internal/validation"
)

// pathID reads a chi URL parameter and checks it is a single id segment.
func pathID(rw *ResponseWriter, r *http.Request, name string) (string, bool) {
	id := chi.URLParam(r, name)
	if !validation.IsContentID(id) {
		rw.ValidationError(name+" must be a content id", map[string]interface{}{"field": name, "value": id})
		return "", false
	}
	return id, true
}

// ListCourses returns the metadata of every course.
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.store.ListCourses(r.Context()))
}

// GetCourse returns one course with its ordered modules and lessons.
func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	courseID, ok := pathID(rw, r, "courseID")
	if !ok {
		return
	}

	course := h.store.LoadCourseStructure(r.Context(), courseID)
	if course == nil {
		rw.NotFound("Course not found: " + courseID)
		return
	}
	rw.Success(course)
}

// GetLesson returns one lesson with its markdown body.
func (h *Handler) GetLesson(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	courseID, ok := pathID(rw, r, "courseID")
	if !ok {
		return
	}
	moduleID, ok := pathID(rw, r, "moduleID")
	if !ok {
		return
	}
	lessonID, ok := pathID(rw, r, "lessonID")
	if !ok {
		return
	}

	lesson := h.store.LoadLesson(r.Context(), courseID, moduleID, lessonID)
	if lesson == nil {
		rw.NotFound("Lesson not found: " + courseID + "/" + moduleID + "/" + lessonID)
		return
	}
	rw.Success(lesson)
}

// CourseRelationships returns next/previous edges between the course's lessons.
func (h *Handler) CourseRelationships(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	courseID, ok := pathID(rw, r, "courseID")
	if !ok {
		return
	}

	if h.store.LoadCourseStructure(r.Context(), courseID) == nil {
		rw.NotFound("Course not found: " + courseID)
		return
	}
	rw.Success(h.resolver.GenerateSequenceRelationships(r.Context(), courseID))
}

// ListExercises returns the metadata of every exercise.
func (h *Handler) ListExercises(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.store.ListExercises(r.Context()))
}

// GetExercise returns one exercise with its markdown body.
func (h *Handler) GetExercise(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	category, ok := pathID(rw, r, "category")
	if !ok {
		return
	}
	exerciseID, ok := pathID(rw, r, "exerciseID")
	if !ok {
		return
	}

	exercise := h.store.LoadExercise(r.Context(), category, exerciseID)
	if exercise == nil {
		rw.NotFound("Exercise not found: " + category + "/" + exerciseID)
		return
	}
	rw.Success(exercise)
}
