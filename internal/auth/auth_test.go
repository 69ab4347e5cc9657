package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pathlight/courseware/internal/rbac"
)

func TestIssueAndParse(t *testing.T) {
	svc := NewService("test-secret")

	tok, err := svc.IssueJWT("user-1", "learner")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := svc.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Sub != "user-1" || claims.Role != "learner" {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := NewService("other-secret").Parse(tok); err == nil {
		t.Fatal("token signed with a different secret must not parse")
	}
}

func TestJWTMiddleware(t *testing.T) {
	svc := NewService("test-secret")
	var gotSub, gotRole string
	var gotClaims *Claims
	h := JWTMiddleware(svc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = rbac.RoleFromContext(r.Context())
		gotClaims = ClaimsFromContext(r.Context())
	}))

	tok, _ := svc.IssueJWT("user-2", "admin")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if gotSub != "user-2" || gotRole != "admin" {
		t.Fatalf("context sub=%q role=%q", gotSub, gotRole)
	}
	if gotClaims == nil || gotClaims.Issuer != "courseware" {
		t.Fatalf("claims = %+v, want issuer courseware", gotClaims)
	}

	for _, header := range []string{"", "Bearer garbage", "Basic abc"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}
