package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/store-ratings/internal/db/dbtest"
	"github.com/BruksfildServices01/store-ratings/internal/domain/store"
	"github.com/BruksfildServices01/store-ratings/internal/domain/user"
	"github.com/BruksfildServices01/store-ratings/internal/models"
)

func seedUser(t *testing.T, repo *UserGormRepository, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, PasswordHash: "x"}
	if err := repo.CreateWithRole(context.Background(), u, models.RoleUser); err != nil {
		t.Fatalf("CreateWithRole(%s) error = %v", email, err)
	}
	return u
}

func seedStore(t *testing.T, db *gorm.DB, name, address string, ownerID *string) *models.Store {
	t.Helper()
	s := &models.Store{Name: name, Address: address, OwnerID: ownerID}
	if _, err := NewStoreGormRepository(db).CreateWithOwner(context.Background(), s, models.RoleOwner); err != nil {
		t.Fatalf("Create store %s error = %v", name, err)
	}
	return s
}

func TestRatingUpsert_OneRowPerUserStore(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	users := NewUserGormRepository(db)
	ratings := NewRatingGormRepository(db)

	u := seedUser(t, users, "Alice Reviewer Example", "alice@example.com")
	s := seedStore(t, db, "Corner Coffee Roasters", "1 Main St", nil)

	first, err := ratings.Upsert(ctx, u.ID, s.ID, 2, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}
	second, err := ratings.Upsert(ctx, u.ID, s.ID, 5, time.Now())
	if err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second upsert id = %s, want the original row %s", second.ID, first.ID)
	}
	if second.Value != 5 {
		t.Errorf("stored rating = %d, want 5", second.Value)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Errorf("updated_at not refreshed: first %v second %v", first.UpdatedAt, second.UpdatedAt)
	}

	var count int64
	db.Model(&models.Rating{}).Count(&count)
	if count != 1 {
		t.Errorf("ratings rows = %d, want 1", count)
	}
}

func TestRatingAggregates(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	users := NewUserGormRepository(db)
	ratings := NewRatingGormRepository(db)

	empty := seedStore(t, db, "Nobody Rated This Shop", "2 Side St", nil)
	rated := seedStore(t, db, "Everybody Rates This Shop", "3 High St", nil)

	for i, v := range []int{3, 4, 5} {
		u := seedUser(t, users, "Reviewer Number Something", string(rune('a'+i))+"@example.com")
		if _, err := ratings.Upsert(ctx, u.ID, rated.ID, v, time.Now()); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	agg, err := ratings.StoreAggregate(ctx, empty.ID)
	if err != nil {
		t.Fatalf("StoreAggregate(empty) error = %v", err)
	}
	if agg.Average != nil || agg.Count != 0 {
		t.Errorf("empty aggregate = %+v, want nil average and 0 count", agg)
	}

	agg, err = ratings.StoreAggregate(ctx, rated.ID)
	if err != nil {
		t.Fatalf("StoreAggregate(rated) error = %v", err)
	}
	if agg.Average == nil || *agg.Average != 4.00 || agg.Count != 3 {
		t.Errorf("rated aggregate = %+v, want 4.00 over 3", agg)
	}
}

func TestOwnerAndUserSummaries(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	users := NewUserGormRepository(db)
	ratings := NewRatingGormRepository(db)

	owner := seedUser(t, users, "Olivia The Store Owner", "owner@example.com")
	alice := seedUser(t, users, "Alice Reviewer Example", "alice@example.com")
	bob := seedUser(t, users, "Bobby Reviewer Example", "bob@example.com")

	s1 := seedStore(t, db, "Owner's First Store Here", "1 Owner St", &owner.ID)
	s2 := seedStore(t, db, "Owner's Second Store Here", "2 Owner St", &owner.ID)
	seedStore(t, db, "Somebody Else's Store Here", "3 Other St", nil)

	base := time.Now().Add(-time.Hour)
	mustUpsert := func(u, s string, v int, at time.Time) {
		if _, err := ratings.Upsert(ctx, u, s, v, at); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}
	mustUpsert(alice.ID, s1.ID, 4, base)
	mustUpsert(alice.ID, s2.ID, 5, base.Add(time.Minute))
	mustUpsert(bob.ID, s1.ID, 2, base.Add(2*time.Minute))

	stats, err := ratings.OwnerStats(ctx, owner.ID)
	if err != nil {
		t.Fatalf("OwnerStats() error = %v", err)
	}
	if stats.Count != 3 || stats.UniqueReviewers != 2 || stats.Average == nil || *stats.Average != 3.67 {
		t.Errorf("OwnerStats() = %+v avg %v", stats, stats.Average)
	}

	reviews, err := ratings.RecentForOwner(ctx, owner.ID, 20)
	if err != nil {
		t.Fatalf("RecentForOwner() error = %v", err)
	}
	if len(reviews) != 3 || reviews[0].UserName != bob.Name || reviews[0].StoreName != s1.Name {
		t.Errorf("RecentForOwner() = %+v", reviews)
	}

	agg, err := ratings.UserAggregate(ctx, alice.ID)
	if err != nil {
		t.Fatalf("UserAggregate() error = %v", err)
	}
	if agg.Count != 2 || agg.Average == nil || *agg.Average != 4.5 {
		t.Errorf("UserAggregate() = %+v", agg)
	}

	unrated, err := ratings.CountUnratedStores(ctx, alice.ID)
	if err != nil {
		t.Fatalf("CountUnratedStores() error = %v", err)
	}
	if unrated != 1 {
		t.Errorf("CountUnratedStores() = %d, want 1", unrated)
	}

	recent, err := ratings.RecentByUser(ctx, alice.ID, 10)
	if err != nil {
		t.Fatalf("RecentByUser() error = %v", err)
	}
	if len(recent) != 2 || recent[0].StoreName != s2.Name || recent[0].Rating != 5 {
		t.Errorf("RecentByUser() = %+v", recent)
	}

	empty, err := ratings.OwnerStats(ctx, alice.ID)
	if err != nil {
		t.Fatalf("OwnerStats(no stores) error = %v", err)
	}
	if empty.Average != nil || empty.Count != 0 || empty.UniqueReviewers != 0 {
		t.Errorf("OwnerStats(no stores) = %+v", empty)
	}
}

func TestStoreSearch(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	users := NewUserGormRepository(db)
	ratings := NewRatingGormRepository(db)
	stores := NewStoreGormRepository(db)

	u := seedUser(t, users, "Alice Reviewer Example", "alice@example.com")
	bakery := seedStore(t, db, "Bakery On The Corner Shop", "10 Baker Street", nil)
	books := seedStore(t, db, "Antique Books And Prints", "22 Market Road", nil)
	seedStore(t, db, "Zebra Crossing Hardware", "5 Baker Street", nil)

	if _, err := ratings.Upsert(ctx, u.ID, bakery.ID, 3, time.Now()); err != nil {
		t.Fatal(err)
	}
	if _, err := ratings.Upsert(ctx, u.ID, books.ID, 5, time.Now()); err != nil {
		t.Fatal(err)
	}

	names := func(rows []store.Row) []string {
		out := make([]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.Name)
		}
		return out
	}

	tests := []struct {
		name  string
		query string
		order store.Order
		want  []string
	}{
		{
			name:  "all by name",
			order: store.OrderByName,
			want:  []string{"Antique Books And Prints", "Bakery On The Corner Shop", "Zebra Crossing Hardware"},
		},
		{
			name:  "address match is case insensitive",
			query: "baker street",
			order: store.OrderByName,
			want:  []string{"Bakery On The Corner Shop", "Zebra Crossing Hardware"},
		},
		{
			name:  "by rating unrated last",
			order: store.OrderByRating,
			want:  []string{"Antique Books And Prints", "Bakery On The Corner Shop", "Zebra Crossing Hardware"},
		},
		{
			name:  "literal percent matches nothing",
			query: "%",
			order: store.OrderByName,
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := stores.Search(ctx, tt.query, tt.order)
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			got := names(rows)
			if len(got) != len(tt.want) {
				t.Fatalf("Search() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Search() = %v, want %v", got, tt.want)
				}
			}
		})
	}

	rows, _ := stores.Search(ctx, "", store.OrderByName)
	for _, r := range rows {
		if r.ID == bakery.ID && (r.RatingsCount != 1 || r.RatingsSum != 3) {
			t.Errorf("bakery row = %+v, want sum 3 count 1", r)
		}
	}
}

func TestUserRepository(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	users := NewUserGormRepository(db)

	alice := seedUser(t, users, "Alice Reviewer Example", "alice@example.com")

	dup := &models.User{Name: "Another Alice Example", Email: "alice@example.com", PasswordHash: "x"}
	if err := users.CreateWithRole(ctx, dup, models.RoleUser); !errors.Is(err, user.ErrDuplicateEmail) {
		t.Errorf("CreateWithRole(duplicate) error = %v, want ErrDuplicateEmail", err)
	}

	exists, err := users.EmailExists(ctx, "alice@example.com")
	if err != nil || !exists {
		t.Errorf("EmailExists() = %v, %v", exists, err)
	}

	if _, err := users.FindByEmail(ctx, "nobody@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("FindByEmail(unknown) error = %v, want ErrNotFound", err)
	}

	granted, err := users.GrantRole(ctx, alice.ID, models.RoleOwner)
	if err != nil || !granted {
		t.Fatalf("GrantRole() = %v, %v", granted, err)
	}
	granted, err = users.GrantRole(ctx, alice.ID, models.RoleOwner)
	if err != nil || granted {
		t.Errorf("second GrantRole() = %v, %v, want false", granted, err)
	}

	found, err := users.FindByID(ctx, alice.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got := found.RoleNames(); len(got) != 2 || got[0] != "owner" || got[1] != "user" {
		t.Errorf("roles = %v, want [owner user]", got)
	}

	seedUser(t, users, "Bobby Builder Example", "bob@builders.org")
	list, err := users.List(ctx, "builders")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].Email != "bob@builders.org" {
		t.Errorf("List(builders) = %+v", list)
	}

	n, err := users.Count(ctx)
	if err != nil || n != 2 {
		t.Errorf("Count() = %d, %v, want 2", n, err)
	}
}

func TestStoreCreateWithOwner(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	users := NewUserGormRepository(db)
	stores := NewStoreGormRepository(db)

	owner := seedUser(t, users, "Olivia The Store Owner", "owner@example.com")

	first := &models.Store{Name: "Owner's First Store Here", Address: "1 Owner St", OwnerID: &owner.ID}
	granted, err := stores.CreateWithOwner(ctx, first, models.RoleOwner)
	if err != nil || !granted {
		t.Fatalf("CreateWithOwner(first) = %v, %v, want role granted", granted, err)
	}

	second := &models.Store{Name: "Owner's Second Store Here", Address: "2 Owner St", OwnerID: &owner.ID}
	granted, err = stores.CreateWithOwner(ctx, second, models.RoleOwner)
	if err != nil || granted {
		t.Errorf("CreateWithOwner(second) = %v, %v, want role already held", granted, err)
	}

	n, err := stores.Count(ctx)
	if err != nil || n != 2 {
		t.Errorf("Count() = %d, %v, want 2", n, err)
	}
}

func TestStoreCreateWithOwner_GrantFailureRollsBack(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	users := NewUserGormRepository(db)
	stores := NewStoreGormRepository(db)

	owner := seedUser(t, users, "Olivia The Store Owner", "owner@example.com")

	if err := db.Where("name = ?", models.RoleOwner).Delete(&models.Role{}).Error; err != nil {
		t.Fatalf("delete owner role: %v", err)
	}

	s := &models.Store{Name: "Never Persisted Store Here", Address: "1 Owner St", OwnerID: &owner.ID}
	if _, err := stores.CreateWithOwner(ctx, s, models.RoleOwner); err == nil {
		t.Fatal("CreateWithOwner() error = nil, want role lookup failure")
	}

	n, err := stores.Count(ctx)
	if err != nil || n != 0 {
		t.Errorf("Count() = %d, %v, want 0 after rollback", n, err)
	}
}
