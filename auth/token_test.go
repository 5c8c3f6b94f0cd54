package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken(Claims{UserID: 7, RestaurantID: 3, Email: "dona@pizzaria.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.RestaurantID != 3 || claims.Email != "dona@pizzaria.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-a")
	token, err := IssueToken(Claims{UserID: 1})
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("JWT_SECRET", "secret-b")
	if _, err := ParseToken(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}
