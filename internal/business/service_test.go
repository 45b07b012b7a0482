package business

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ericblois/marketplace-backend/internal/docstore"
	"github.com/ericblois/marketplace-backend/internal/user"
)

func newTestService(t *testing.T) (*Service, *docstore.MemStore, *user.Repo) {
	t.Helper()

	store := docstore.NewMemStore()
	users := user.NewRepo(store)
	ctx := context.Background()

	owner := user.DefaultUserData()
	owner.Name = "Owner"
	owner.Country = "canada"
	if err := users.Set(ctx, "u-owner", owner); err != nil {
		t.Fatal(err)
	}
	other := user.DefaultUserData()
	other.Country = "canada"
	if err := users.Set(ctx, "u-other", other); err != nil {
		t.Fatal(err)
	}
	return NewService(store), store, users
}

func TestCreate_FilesBothRecordsAndProfile(t *testing.T) {
	t.Parallel()

	svc, store, users := newTestService(t)
	ctx := context.Background()

	businessID, err := svc.Create(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}
	if businessID == "" {
		t.Fatal("empty businessID")
	}

	var private PrivateBusinessData
	if err := store.Get(ctx, docstore.PrivateBusinessPath("canada", businessID), &private); err != nil {
		t.Fatalf("private record: %v", err)
	}
	var public PublicBusinessData
	if err := store.Get(ctx, docstore.PublicBusinessPath("canada", businessID), &public); err != nil {
		t.Fatalf("public record: %v", err)
	}
	if private.UserID != "u-owner" || public.UserID != "u-owner" {
		t.Fatalf("owners: private=%s public=%s", private.UserID, public.UserID)
	}
	if private.BusinessID != businessID || public.BusinessID != businessID {
		t.Fatalf("businessIDs: private=%s public=%s", private.BusinessID, public.BusinessID)
	}
	if private.Country != "canada" || public.Country != "canada" {
		t.Fatalf("countries: private=%s public=%s", private.Country, public.Country)
	}

	profile, err := users.Get(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}
	if len(profile.BusinessIDs) != 1 || profile.BusinessIDs[0] != businessID {
		t.Fatalf("businessIDs=%v", profile.BusinessIDs)
	}
}

func TestCreate_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	_, err := svc.Create(context.Background(), "u-ghost")
	if status.Code(err) != codes.NotFound {
		t.Fatalf("err=%v, expected NotFound", err)
	}
}

func TestDelete_RemovesRecordsAndListEntry(t *testing.T) {
	t.Parallel()

	svc, store, users := newTestService(t)
	ctx := context.Background()
	businessID, err := svc.Create(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Delete(ctx, "u-owner", businessID)
	if err != nil {
		t.Fatal(err)
	}
	if got != businessID {
		t.Fatalf("returned %q, expected %q", got, businessID)
	}

	var private PrivateBusinessData
	if err := store.Get(ctx, docstore.PrivateBusinessPath("canada", businessID), &private); err != docstore.ErrNotFound {
		t.Fatalf("private record still present: err=%v", err)
	}
	var public PublicBusinessData
	if err := store.Get(ctx, docstore.PublicBusinessPath("canada", businessID), &public); err != docstore.ErrNotFound {
		t.Fatalf("public record still present: err=%v", err)
	}
	profile, err := users.Get(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}
	if len(profile.BusinessIDs) != 0 {
		t.Fatalf("businessIDs=%v, expected empty", profile.BusinessIDs)
	}
}

func TestDelete_SecondCallNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	ctx := context.Background()
	businessID, err := svc.Create(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Delete(ctx, "u-owner", businessID); err != nil {
		t.Fatal(err)
	}

	_, err = svc.Delete(ctx, "u-owner", businessID)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("err=%v, expected NotFound on second delete", err)
	}
}

func TestDelete_RemovesExactlyOneListEntry(t *testing.T) {
	t.Parallel()

	svc, _, users := newTestService(t)
	ctx := context.Background()
	first, err := svc.Create(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Create(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Delete(ctx, "u-owner", first); err != nil {
		t.Fatal(err)
	}
	profile, err := users.Get(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}
	if len(profile.BusinessIDs) != 1 || profile.BusinessIDs[0] != second {
		t.Fatalf("businessIDs=%v, expected only %q", profile.BusinessIDs, second)
	}
}

func TestDelete_NotOwner(t *testing.T) {
	t.Parallel()

	svc, store, _ := newTestService(t)
	ctx := context.Background()
	businessID, err := svc.Create(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.Delete(ctx, "u-other", businessID)
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("err=%v, expected PermissionDenied", err)
	}

	var private PrivateBusinessData
	if err := store.Get(ctx, docstore.PrivateBusinessPath("canada", businessID), &private); err != nil {
		t.Fatalf("record deleted by unauthorized call: %v", err)
	}
}

func TestDelete_MissingFromProfileList(t *testing.T) {
	t.Parallel()

	svc, _, users := newTestService(t)
	ctx := context.Background()
	businessID, err := svc.Create(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}

	profile, err := users.Get(ctx, "u-owner")
	if err != nil {
		t.Fatal(err)
	}
	profile.BusinessIDs = []string{}
	if err := users.Set(ctx, "u-owner", *profile); err != nil {
		t.Fatal(err)
	}

	_, err = svc.Delete(ctx, "u-owner", businessID)
	if status.Code(err) != codes.NotFound {
		t.Fatalf("err=%v, expected NotFound when the profile list lacks the ID", err)
	}
}

func TestDelete_UnknownBusiness(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	_, err := svc.Delete(context.Background(), "u-owner", "b-ghost")
	if status.Code(err) != codes.NotFound {
		t.Fatalf("err=%v, expected NotFound", err)
	}
}
