package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/ps-health/patient-service/api"
	"github.com/ps-health/patient-service/patients"
	patientsTest "github.com/ps-health/patient-service/patients/test"
	"github.com/ps-health/patient-service/test"
)

func newRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return req
}

var _ = Describe("Patients Handlers", func() {
	var server *echo.Echo
	var service *patientsTest.MockService
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = patientsTest.NewMockService(ctrl)

		handler := api.NewHandler(api.Params{
			Patients: service,
			Logger:   zap.NewNop().Sugar(),
		})
		metrics, err := api.NewMetrics()
		Expect(err).ToNot(HaveOccurred())
		server, err = api.NewServer(handler, api.NewHealthCheck(), metrics, zap.NewNop())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		return rec
	}

	Describe("List", func() {
		It("returns the read view of every patient", func() {
			first := patientsTest.RandomPatient()
			first.Id = uuid.New()
			second := patientsTest.RandomPatient()
			second.Id = uuid.New()
			service.EXPECT().List(gomock.Any()).Return([]patients.Patient{first, second}, nil)

			rec := serve(newRequest(http.MethodGet, "/patients", ""))
			Expect(rec.Code).To(Equal(http.StatusOK))

			var body []map[string]interface{}
			Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
			Expect(body).To(HaveLen(2))
			Expect(body[0]).To(HaveKeyWithValue("name", first.Name))
			Expect(body[0]).To(HaveKeyWithValue("dateofBirth", first.DateOfBirth.Format(time.DateOnly)))
			Expect(body[0]).ToNot(HaveKey("id"))
			Expect(body[0]).ToNot(HaveKey("registeredDate"))
			Expect(body[1]).To(HaveKeyWithValue("email", second.Email))
		})

		It("returns an empty array when there are no patients", func() {
			service.EXPECT().List(gomock.Any()).Return(nil, nil)

			rec := serve(newRequest(http.MethodGet, "/patients", ""))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(rec.Body.String())).To(Equal("[]"))
		})
	})

	Describe("Get", func() {
		It("returns the read view of the patient", func() {
			id := uuid.New()
			patient := patients.Patient{
				Id:             id,
				Name:           "Ann",
				Email:          "ann@x.com",
				Address:        "1 St",
				DateOfBirth:    time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
				RegisteredDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			}
			service.EXPECT().Get(gomock.Any(), gomock.Eq(id)).Return(&patient, nil)

			rec := serve(newRequest(http.MethodGet, "/patients/"+id.String(), ""))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"name":"Ann","email":"ann@x.com","address":"1 St","dateofBirth":"1990-01-01"}`))
		})

		It("returns not found for an absent patient", func() {
			id := uuid.New()
			service.EXPECT().Get(gomock.Any(), gomock.Eq(id)).Return(nil, patients.ErrNotFound)

			rec := serve(newRequest(http.MethodGet, "/patients/"+id.String(), ""))
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("rejects a malformed id before calling the service", func() {
			rec := serve(newRequest(http.MethodGet, "/patients/not-a-uuid", ""))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("Invalid format for parameter id"))
		})
	})

	Describe("Create", func() {
		It("creates the patient and returns the entity view", func() {
			id := uuid.New()
			service.EXPECT().
				Create(gomock.Any(), test.Match("the patient from the request", func(p patients.Patient) bool {
					return p.IsNew() &&
						p.Name == "Ann" &&
						p.Email == "ann@x.com" &&
						p.Address == "1 St" &&
						p.DateOfBirth.Equal(time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)) &&
						p.RegisteredDate.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
				})).
				DoAndReturn(func(_ context.Context, p patients.Patient) (*patients.Patient, error) {
					p.Id = id
					return &p, nil
				})

			body := `{"name":"Ann","email":"ann@x.com","address":"1 St","dateOfBirth":"1990-01-01","registeredDate":"2024-01-01"}`
			rec := serve(newRequest(http.MethodPost, "/patients", body))
			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(rec.Body.String()).To(MatchJSON(`{
				"id":"` + id.String() + `",
				"name":"Ann",
				"email":"ann@x.com",
				"address":"1 St",
				"dateofBirth":"1990-01-01",
				"registeredDate":"2024-01-01"
			}`))
		})

		It("ignores a caller supplied id", func() {
			service.EXPECT().
				Create(gomock.Any(), test.Match("a patient without id", func(p patients.Patient) bool { return p.IsNew() })).
				DoAndReturn(func(_ context.Context, p patients.Patient) (*patients.Patient, error) {
					p.Id = uuid.New()
					return &p, nil
				})

			body := `{"id":"` + uuid.NewString() + `","name":"Ann","email":"ann@x.com","address":"1 St","dateofBirth":"1990-01-01"}`
			rec := serve(newRequest(http.MethodPost, "/patients", body))
			Expect(rec.Code).To(Equal(http.StatusCreated))
		})

		It("reports every invalid field", func() {
			body := `{"name":"  ","email":"not-an-email","address":""}`
			rec := serve(newRequest(http.MethodPost, "/patients", body))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(MatchJSON(`{
				"message":"validation failed",
				"errors":{
					"name":"Name should not be Empty",
					"email":"Provide a correct Email",
					"address":"Empty Address not Allowed",
					"dateofBirth":"Empty Birth Date not Allowed"
				}
			}`))
		})

		It("rejects a missing email", func() {
			body := `{"name":"Ann","address":"1 St","dateofBirth":"1990-01-01"}`
			rec := serve(newRequest(http.MethodPost, "/patients", body))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(MatchJSON(`{"message":"validation failed","errors":{"email":"Provide a correct Email"}}`))
		})

		It("rejects a body that cannot be parsed", func() {
			rec := serve(newRequest(http.MethodPost, "/patients", `{"name":`))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("error parsing parameters"))
		})

		It("rejects a malformed date", func() {
			body := `{"name":"Ann","email":"ann@x.com","address":"1 St","dateofBirth":"01/01/1990"}`
			rec := serve(newRequest(http.MethodPost, "/patients", body))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns conflict for a duplicate email", func() {
			service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, patients.ErrDuplicateEmail)

			body := `{"name":"Ann","email":"ann@x.com","address":"1 St","dateofBirth":"1990-01-01"}`
			rec := serve(newRequest(http.MethodPost, "/patients", body))
			Expect(rec.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("Delete", func() {
		It("confirms the deletion", func() {
			id := uuid.New()
			service.EXPECT().Remove(gomock.Any(), gomock.Eq(id)).Return(true, nil)

			rec := serve(newRequest(http.MethodDelete, "/patients/"+id.String(), ""))
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(Equal("Success: Deleted Patient of ID: " + id.String()))
		})

		It("returns bad request with an empty body for an absent patient", func() {
			id := uuid.New()
			service.EXPECT().Remove(gomock.Any(), gomock.Eq(id)).Return(false, nil)

			rec := serve(newRequest(http.MethodDelete, "/patients/"+id.String(), ""))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.Len()).To(BeZero())
		})

		It("rejects a malformed id before calling the service", func() {
			rec := serve(newRequest(http.MethodDelete, "/patients/12345", ""))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})
})
