package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/habittrack/habittrack/internal/db"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, errOpen := db.Open(dsn)
	if errOpen != nil {
		t.Fatalf("open database: %v", errOpen)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return NewGormStore(conn)
}

func TestCreateHabitIncrementsTotal(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	user, errUser := st.CreateUser(ctx, CreateUserParams{Username: "alice", Name: "Alice"})
	if errUser != nil {
		t.Fatalf("create user: %v", errUser)
	}
	if user.TotalHabits != 0 {
		t.Fatalf("expected zero habits, got %d", user.TotalHabits)
	}

	for i := 0; i < 3; i++ {
		_, errHabit := st.CreateHabit(ctx, CreateHabitParams{
			UserID:      user.ID,
			Name:        fmt.Sprintf("habit %d", i),
			Frequency:   "daily",
			TargetValue: 1,
			Color:       "#3B82F6",
		})
		if errHabit != nil {
			t.Fatalf("create habit: %v", errHabit)
		}
	}

	fresh, errGet := st.GetUser(ctx, user.ID)
	if errGet != nil {
		t.Fatalf("get user: %v", errGet)
	}
	if fresh.TotalHabits != 3 {
		t.Fatalf("expected 3 total habits, got %d", fresh.TotalHabits)
	}
}

func TestDeleteHabitDecrementsAndKeepsCompletions(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	user, _ := st.CreateUser(ctx, CreateUserParams{Username: "bob", Name: "Bob"})
	habit, errHabit := st.CreateHabit(ctx, CreateHabitParams{
		UserID: user.ID, Name: "Read", Frequency: "daily", TargetValue: 1, Color: "#10B981",
	})
	if errHabit != nil {
		t.Fatalf("create habit: %v", errHabit)
	}
	if _, errCompletion := st.CreateCompletion(ctx, CreateCompletionParams{
		HabitID: habit.ID, Value: 1, Date: "2025-06-01",
	}); errCompletion != nil {
		t.Fatalf("create completion: %v", errCompletion)
	}

	deleted, errDelete := st.DeleteHabit(ctx, habit.ID)
	if errDelete != nil {
		t.Fatalf("delete habit: %v", errDelete)
	}
	if !deleted {
		t.Fatal("expected habit to be deleted")
	}

	fresh, _ := st.GetUser(ctx, user.ID)
	if fresh.TotalHabits != 0 {
		t.Fatalf("expected 0 total habits, got %d", fresh.TotalHabits)
	}

	// The completion row survives the habit delete.
	orphaned, errList := st.ListHabitCompletions(ctx, habit.ID)
	if errList != nil {
		t.Fatalf("list habit completions: %v", errList)
	}
	if len(orphaned) != 1 {
		t.Fatalf("expected 1 orphaned completion, got %d", len(orphaned))
	}

	// The user-scoped listing no longer sees it.
	visible, errVisible := st.ListCompletions(ctx, user.ID, "")
	if errVisible != nil {
		t.Fatalf("list completions: %v", errVisible)
	}
	if len(visible) != 0 {
		t.Fatalf("expected no visible completions, got %d", len(visible))
	}
}

func TestDeleteHabitMissing(t *testing.T) {
	st := newTestStore(t)

	deleted, errDelete := st.DeleteHabit(context.Background(), "no-such-id")
	if errDelete != nil {
		t.Fatalf("delete habit: %v", errDelete)
	}
	if deleted {
		t.Fatal("expected no deletion for unknown id")
	}
}

func TestListCompletionsFiltersByDate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	user, _ := st.CreateUser(ctx, CreateUserParams{Username: "carol", Name: "Carol"})
	habit, _ := st.CreateHabit(ctx, CreateHabitParams{
		UserID: user.ID, Name: "Run", Frequency: "daily", TargetValue: 1, Color: "#3B82F6",
	})

	for _, date := range []string{"2025-06-01", "2025-06-01", "2025-06-02"} {
		if _, errCompletion := st.CreateCompletion(ctx, CreateCompletionParams{
			HabitID: habit.ID, Value: 1, Date: date,
		}); errCompletion != nil {
			t.Fatalf("create completion: %v", errCompletion)
		}
	}

	day, errDay := st.ListCompletions(ctx, user.ID, "2025-06-01")
	if errDay != nil {
		t.Fatalf("list completions: %v", errDay)
	}
	if len(day) != 2 {
		t.Fatalf("expected 2 completions on day, got %d", len(day))
	}

	all, errAll := st.ListCompletions(ctx, user.ID, "")
	if errAll != nil {
		t.Fatalf("list completions: %v", errAll)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 completions total, got %d", len(all))
	}
}

func TestUpdateUserPartial(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	user, _ := st.CreateUser(ctx, CreateUserParams{Username: "dave", Name: "Dave"})
	newName := "David"
	updated, errUpdate := st.UpdateUser(ctx, user.ID, UserUpdate{Name: &newName})
	if errUpdate != nil {
		t.Fatalf("update user: %v", errUpdate)
	}
	if updated.Name != "David" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if updated.Username != "dave" {
		t.Fatalf("expected username untouched, got %q", updated.Username)
	}

	missing, errMissing := st.UpdateUser(ctx, "no-such-id", UserUpdate{Name: &newName})
	if errMissing != nil {
		t.Fatalf("update missing user: %v", errMissing)
	}
	if missing != nil {
		t.Fatal("expected nil for missing user")
	}
}

func TestFriendshipLifecycle(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	alice, _ := st.CreateUser(ctx, CreateUserParams{Username: "alice", Name: "Alice"})
	bob, _ := st.CreateUser(ctx, CreateUserParams{Username: "bob", Name: "Bob"})

	if _, errAdd := st.AddFriend(ctx, alice.ID, bob.ID); errAdd != nil {
		t.Fatalf("add friend: %v", errAdd)
	}

	has, errHas := st.HasFriendship(ctx, alice.ID, bob.ID)
	if errHas != nil {
		t.Fatalf("check friendship: %v", errHas)
	}
	if !has {
		t.Fatal("expected friendship to exist")
	}

	// The edge is directed.
	reverse, _ := st.HasFriendship(ctx, bob.ID, alice.ID)
	if reverse {
		t.Fatal("expected no reverse friendship")
	}

	friends, errFriends := st.ListFriends(ctx, alice.ID)
	if errFriends != nil {
		t.Fatalf("list friends: %v", errFriends)
	}
	if len(friends) != 1 || friends[0].ID != bob.ID {
		t.Fatalf("unexpected friends: %+v", friends)
	}

	removed, errRemove := st.RemoveFriend(ctx, alice.ID, bob.ID)
	if errRemove != nil {
		t.Fatalf("remove friend: %v", errRemove)
	}
	if !removed {
		t.Fatal("expected friendship removal")
	}

	again, _ := st.RemoveFriend(ctx, alice.ID, bob.ID)
	if again {
		t.Fatal("expected second removal to report missing edge")
	}
}

func TestGroupMembership(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	owner, _ := st.CreateUser(ctx, CreateUserParams{Username: "owner", Name: "Owner"})
	member, _ := st.CreateUser(ctx, CreateUserParams{Username: "member", Name: "Member"})
	habit, _ := st.CreateHabit(ctx, CreateHabitParams{
		UserID: owner.ID, Name: "Meditate", Frequency: "daily", TargetValue: 1,
		Color: "#8B5CF6", IsCollaborative: true,
	})

	if _, errAdd := st.AddGroupMember(ctx, habit.ID, member.ID); errAdd != nil {
		t.Fatalf("add group member: %v", errAdd)
	}

	members, errList := st.ListHabitMembers(ctx, habit.ID)
	if errList != nil {
		t.Fatalf("list habit members: %v", errList)
	}
	if len(members) != 1 || members[0].ID != member.ID {
		t.Fatalf("unexpected members: %+v", members)
	}

	removed, errRemove := st.RemoveGroupMember(ctx, habit.ID, member.ID)
	if errRemove != nil {
		t.Fatalf("remove group member: %v", errRemove)
	}
	if !removed {
		t.Fatal("expected membership removal")
	}

	again, _ := st.RemoveGroupMember(ctx, habit.ID, member.ID)
	if again {
		t.Fatal("expected second removal to report missing membership")
	}
}

func TestListUsersSearch(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if _, errUser := st.CreateUser(ctx, CreateUserParams{Username: "sarah", Name: "Sarah Johnson"}); errUser != nil {
		t.Fatalf("create user: %v", errUser)
	}
	if _, errUser := st.CreateUser(ctx, CreateUserParams{Username: "mike", Name: "Mike Chen"}); errUser != nil {
		t.Fatalf("create user: %v", errUser)
	}

	matches, errSearch := st.ListUsers(ctx, "SAR")
	if errSearch != nil {
		t.Fatalf("list users: %v", errSearch)
	}
	if len(matches) != 1 || matches[0].Username != "sarah" {
		t.Fatalf("unexpected search result: %+v", matches)
	}

	all, errAll := st.ListUsers(ctx, "")
	if errAll != nil {
		t.Fatalf("list users: %v", errAll)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 users, got %d", len(all))
	}
}

func TestSeedDataIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if errSeed := db.EnsureDemoData(st.conn, "demo-user-1"); errSeed != nil {
			t.Fatalf("seed demo data: %v", errSeed)
		}
	}

	demo, errGet := st.GetUser(ctx, "demo-user-1")
	if errGet != nil {
		t.Fatalf("get demo user: %v", errGet)
	}
	if demo == nil || demo.CurrentStreak != 3 || demo.LongestStreak != 7 {
		t.Fatalf("unexpected demo user: %+v", demo)
	}

	friends, errFriends := st.ListFriends(ctx, "demo-user-1")
	if errFriends != nil {
		t.Fatalf("list friends: %v", errFriends)
	}
	if len(friends) != 2 {
		t.Fatalf("expected 2 seeded friends, got %d", len(friends))
	}

	achievements, errAch := st.ListAchievements(ctx, "demo-user-1")
	if errAch != nil {
		t.Fatalf("list achievements: %v", errAch)
	}
	if len(achievements) != 4 {
		t.Fatalf("expected 4 achievements, got %d", len(achievements))
	}

	updates, errUpdates := st.ListFriendUpdates(ctx, "demo-user-1")
	if errUpdates != nil {
		t.Fatalf("list friend updates: %v", errUpdates)
	}
	if len(updates) != 2 {
		t.Fatalf("expected 2 friend updates, got %d", len(updates))
	}
	if updates[0].FriendName != "Sarah Johnson" {
		t.Fatalf("expected newest update first, got %q", updates[0].FriendName)
	}
}
