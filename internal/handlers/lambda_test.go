package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"car-registry-api/internal/models"
	"car-registry-api/pkg/lambda"
)

func decodeLambdaEnvelope(t *testing.T, resp *lambda.Response) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body, err)
	}
	return env
}

func TestHandleOptionsPreflight(t *testing.T) {
	h := NewCarHandler(newFakeCarRepository(), testLogger())

	resp, err := h.HandleOptions(context.Background(), &lambda.Request{Method: http.MethodOptions})
	if err != nil {
		t.Fatalf("HandleOptions failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Errorf("missing CORS origin header: %v", resp.Headers)
	}
	if resp.Headers["Access-Control-Allow-Methods"] != "GET, POST, PUT, DELETE, OPTIONS" {
		t.Errorf("allow-methods header = %q", resp.Headers["Access-Control-Allow-Methods"])
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "CORS preflight successful" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestHandleCreateAndGet(t *testing.T) {
	h := NewCarHandler(newFakeCarRepository(), testLogger())
	ctx := context.Background()

	resp, err := h.HandleCreate(ctx, &lambda.Request{Body: []byte(validCarBody)})
	if err != nil {
		t.Fatalf("HandleCreate failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", resp.StatusCode, resp.Body)
	}
	created := decodeLambdaEnvelope(t, resp)
	if created.Message != "Car created successfully" {
		t.Errorf("message = %q", created.Message)
	}
	id, _ := created.Data["id"].(string)
	if id == "" {
		t.Fatal("created car has no id")
	}

	resp, err = h.HandleGet(ctx, &lambda.Request{PathParams: map[string]string{"id": id}})
	if err != nil {
		t.Fatalf("HandleGet failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	fetched := decodeLambdaEnvelope(t, resp)
	if fetched.Data["plate"] != "ABC-1234" {
		t.Errorf("plate = %v, want ABC-1234", fetched.Data["plate"])
	}
}

func TestHandleCreateInvalidJSON(t *testing.T) {
	h := NewCarHandler(newFakeCarRepository(), testLogger())

	resp, err := h.HandleCreate(context.Background(), &lambda.Request{Body: []byte(`{"plate":`)})
	if err != nil {
		t.Fatalf("HandleCreate failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env := decodeLambdaEnvelope(t, resp); env.Error != "Invalid JSON body" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestHandleCreateEmptyBody(t *testing.T) {
	h := NewCarHandler(newFakeCarRepository(), testLogger())

	resp, err := h.HandleCreate(context.Background(), &lambda.Request{})
	if err != nil {
		t.Fatalf("HandleCreate failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	env := decodeLambdaEnvelope(t, resp)
	if env.Error != "Missing required fields: plate, make, model, year, owner" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestHandleGetMissingID(t *testing.T) {
	h := NewCarHandler(newFakeCarRepository(), testLogger())

	resp, err := h.HandleGet(context.Background(), &lambda.Request{})
	if err != nil {
		t.Fatalf("HandleGet failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env := decodeLambdaEnvelope(t, resp); env.Error != "id parameter is required" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestHandleGetQueryParamFallback(t *testing.T) {
	repo := newFakeCarRepository()
	car, _ := repo.Create(context.Background(), models.CarInput{Plate: "A", Make: "B", Model: "C", Year: 2023, Owner: "D"})
	h := NewCarHandler(repo, testLogger())

	resp, err := h.HandleGet(context.Background(), &lambda.Request{
		QueryParams: map[string]string{"id": car.ID},
	})
	if err != nil {
		t.Fatalf("HandleGet failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, resp.Body)
	}
}

func TestHandleList(t *testing.T) {
	repo := newFakeCarRepository()
	for i := 0; i < 2; i++ {
		if _, err := repo.Create(context.Background(), models.CarInput{Plate: "A", Make: "B", Model: "C", Year: 2023, Owner: "D"}); err != nil {
			t.Fatalf("seed car: %v", err)
		}
	}
	h := NewCarHandler(repo, testLogger())

	resp, err := h.HandleList(context.Background(), &lambda.Request{})
	if err != nil {
		t.Fatalf("HandleList failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var env listEnvelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Count == nil || *env.Count != 2 {
		t.Errorf("count = %v, want 2", env.Count)
	}
}

func TestHandleUpdateLifecycle(t *testing.T) {
	repo := newFakeCarRepository()
	car, _ := repo.Create(context.Background(), models.CarInput{Plate: "A", Make: "B", Model: "C", Year: 2023, Owner: "D"})
	h := NewCarHandler(repo, testLogger())

	resp, err := h.HandleUpdate(context.Background(), &lambda.Request{
		PathParams: map[string]string{"id": car.ID},
		Body:       []byte(`{"owner":"Maria"}`),
	})
	if err != nil {
		t.Fatalf("HandleUpdate failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, resp.Body)
	}
	env := decodeLambdaEnvelope(t, resp)
	if env.Data["owner"] != "Maria" || env.Data["plate"] != "A" {
		t.Errorf("update result: %+v", env.Data)
	}
}

func TestHandleUpdateNoData(t *testing.T) {
	repo := newFakeCarRepository()
	car, _ := repo.Create(context.Background(), models.CarInput{Plate: "A", Make: "B", Model: "C", Year: 2023, Owner: "D"})
	h := NewCarHandler(repo, testLogger())

	resp, err := h.HandleUpdate(context.Background(), &lambda.Request{
		PathParams: map[string]string{"id": car.ID},
		Body:       []byte(`{"color":"red"}`),
	})
	if err != nil {
		t.Fatalf("HandleUpdate failed: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env := decodeLambdaEnvelope(t, resp); env.Error != "No data to update" {
		t.Errorf("error = %q", env.Error)
	}
}

func TestHandleUpdateNullFieldClears(t *testing.T) {
	repo := newFakeCarRepository()
	car, _ := repo.Create(context.Background(), models.CarInput{Plate: "ABC-1234", Make: "Toyota", Model: "Corolla", Year: 2023, Owner: "Juan"})
	h := NewCarHandler(repo, testLogger())

	resp, err := h.HandleUpdate(context.Background(), &lambda.Request{
		PathParams: map[string]string{"id": car.ID},
		Body:       []byte(`{"plate":null}`),
	})
	if err != nil {
		t.Fatalf("HandleUpdate failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", resp.StatusCode, resp.Body)
	}
	env := decodeLambdaEnvelope(t, resp)
	if plate, ok := env.Data["plate"].(string); !ok || plate != "" {
		t.Errorf("plate = %v, want cleared", env.Data["plate"])
	}
}

func TestErrorProxyResponseCORSHeaders(t *testing.T) {
	resp := ErrorProxyResponse(http.StatusInternalServerError, "Unknown handler foo")

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Errorf("missing CORS origin header: %v", resp.Headers)
	}
	if resp.Headers["Access-Control-Allow-Methods"] != "GET, POST, PUT, DELETE, OPTIONS" {
		t.Errorf("allow-methods header = %q", resp.Headers["Access-Control-Allow-Methods"])
	}

	var env envelope
	if err := json.Unmarshal([]byte(resp.Body), &env); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if env.Success || env.Error != "Unknown handler foo" {
		t.Errorf("envelope: %+v", env)
	}
}

func TestHandleDelete(t *testing.T) {
	repo := newFakeCarRepository()
	car, _ := repo.Create(context.Background(), models.CarInput{Plate: "A", Make: "B", Model: "C", Year: 2023, Owner: "D"})
	h := NewCarHandler(repo, testLogger())
	ctx := context.Background()

	resp, err := h.HandleDelete(ctx, &lambda.Request{PathParams: map[string]string{"id": car.ID}})
	if err != nil {
		t.Fatalf("HandleDelete failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if env := decodeLambdaEnvelope(t, resp); env.Message != "Car deleted successfully" {
		t.Errorf("message = %q", env.Message)
	}

	resp, err = h.HandleDelete(ctx, &lambda.Request{PathParams: map[string]string{"id": car.ID}})
	if err != nil {
		t.Fatalf("HandleDelete failed: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", resp.StatusCode)
	}
}
