// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/academics/students/model"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateStudentRequest struct {
	StudentNIS        string  `json:"student_nis" validate:"required,max=30"`
	StudentName       string  `json:"student_name" validate:"required,max=150"`
	StudentGender     string  `json:"student_gender" validate:"required,oneof=L P"`
	StudentClass      string  `json:"student_class" validate:"required,max=30"`
	StudentBirthDate  *string `json:"student_birth_date" validate:"omitempty,datetime=2006-01-02"`
	StudentAddress    *string `json:"student_address"`
	StudentParentName *string `json:"student_parent_name" validate:"omitempty,max=150"`
	StudentPhone      *string `json:"student_phone" validate:"omitempty,max=30"`
}

func (r *CreateStudentRequest) ToModel(schoolID uuid.UUID) (*model.Student, error) {
	s := &model.Student{
		StudentSchoolID: schoolID,
		StudentNIS:      r.StudentNIS,
		StudentName:     r.StudentName,
		StudentGender:   model.StudentGender(r.StudentGender),
		StudentClass:    r.StudentClass,
		StudentAddress:  r.StudentAddress,
		StudentParentName: r.StudentParentName,
		StudentPhone:      r.StudentPhone,
		StudentIsActive:   true,
	}
	if r.StudentBirthDate != nil && *r.StudentBirthDate != "" {
		t, err := time.Parse("2006-01-02", *r.StudentBirthDate)
		if err != nil {
			return nil, err
		}
		s.StudentBirthDate = &t
	}
	return s, nil
}

/* =========================================================
   REQUEST: Update (partial)
   ========================================================= */

type UpdateStudentRequest struct {
	StudentNIS        *string `json:"student_nis" validate:"omitempty,max=30"`
	StudentName       *string `json:"student_name" validate:"omitempty,max=150"`
	StudentGender     *string `json:"student_gender" validate:"omitempty,oneof=L P"`
	StudentClass      *string `json:"student_class" validate:"omitempty,max=30"`
	StudentBirthDate  *string `json:"student_birth_date" validate:"omitempty,datetime=2006-01-02"`
	StudentAddress    *string `json:"student_address"`
	StudentParentName *string `json:"student_parent_name" validate:"omitempty,max=150"`
	StudentPhone      *string `json:"student_phone" validate:"omitempty,max=30"`
	StudentIsActive   *bool   `json:"student_is_active"`
}

func (r *UpdateStudentRequest) ApplyTo(s *model.Student) error {
	if r.StudentNIS != nil {
		s.StudentNIS = *r.StudentNIS
	}
	if r.StudentName != nil {
		s.StudentName = *r.StudentName
	}
	if r.StudentGender != nil {
		s.StudentGender = model.StudentGender(*r.StudentGender)
	}
	if r.StudentClass != nil {
		s.StudentClass = *r.StudentClass
	}
	if r.StudentBirthDate != nil {
		if *r.StudentBirthDate == "" {
			s.StudentBirthDate = nil
		} else {
			t, err := time.Parse("2006-01-02", *r.StudentBirthDate)
			if err != nil {
				return err
			}
			s.StudentBirthDate = &t
		}
	}
	if r.StudentAddress != nil {
		s.StudentAddress = r.StudentAddress
	}
	if r.StudentParentName != nil {
		s.StudentParentName = r.StudentParentName
	}
	if r.StudentPhone != nil {
		s.StudentPhone = r.StudentPhone
	}
	if r.StudentIsActive != nil {
		s.StudentIsActive = *r.StudentIsActive
	}
	return nil
}

/* =========================================================
   RESPONSE
   ========================================================= */

type StudentResponse struct {
	StudentID         uuid.UUID  `json:"student_id"`
	StudentNIS        string     `json:"student_nis"`
	StudentName       string     `json:"student_name"`
	StudentGender     string     `json:"student_gender"`
	StudentClass      string     `json:"student_class"`
	StudentBirthDate  *time.Time `json:"student_birth_date,omitempty"`
	StudentAddress    *string    `json:"student_address,omitempty"`
	StudentParentName *string    `json:"student_parent_name,omitempty"`
	StudentPhone      *string    `json:"student_phone,omitempty"`
	StudentIsActive   bool       `json:"student_is_active"`
	StudentCreatedAt  time.Time  `json:"student_created_at"`
}

func FromModelStudent(s *model.Student) StudentResponse {
	return StudentResponse{
		StudentID:         s.StudentID,
		StudentNIS:        s.StudentNIS,
		StudentName:       s.StudentName,
		StudentGender:     string(s.StudentGender),
		StudentClass:      s.StudentClass,
		StudentBirthDate:  s.StudentBirthDate,
		StudentAddress:    s.StudentAddress,
		StudentParentName: s.StudentParentName,
		StudentPhone:      s.StudentPhone,
		StudentIsActive:   s.StudentIsActive,
		StudentCreatedAt:  s.StudentCreatedAt,
	}
}

func FromModelStudents(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelStudent(&list[i]))
	}
	return out
}
