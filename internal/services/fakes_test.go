package services

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"famboard/internal/models/db_models"
)

func mustParse(t *testing.T, id string) uuid.UUID {
	t.Helper()
	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("bad uuid %q: %v", id, err)
	}
	return parsed
}

// memStore backs the fake repositories with plain in-memory state so
// service tests run without a database.
type memStore struct {
	mu       sync.Mutex
	seq      int64
	users    map[string]*db_models.User
	families map[string]*db_models.Family
	members  []*db_models.FamilyMember
	invites  []*db_models.FamilyInvite
	requests []*db_models.FamilyJoinRequest
	tasks    []*db_models.Task
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*db_models.User),
		families: make(map[string]*db_models.Family),
	}
}

func (s *memStore) nextSeq() int64 {
	s.seq++
	return s.seq
}

func (s *memStore) addUser(displayName, email string) *db_models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := &db_models.User{DisplayName: displayName}
	user.ID = uuid.New()
	if email != "" {
		user.Email = &email
	}
	s.users[user.ID.String()] = user
	return user
}

func (s *memStore) findMember(familyID, userID string) *db_models.FamilyMember {
	for _, member := range s.members {
		if member.FamilyID.String() == familyID && member.UserID.String() == userID {
			return member
		}
	}
	return nil
}

// --- UserRepository ---

type fakeUserRepo struct{ store *memStore }

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.store.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, user := range f.store.users {
		if user.Email != nil && *user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

// --- FamilyRepository ---

type fakeFamilyRepo struct{ store *memStore }

func (f *fakeFamilyRepo) CreateWithAdmin(ctx context.Context, family *db_models.Family) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	family.ID = uuid.New()
	f.store.families[family.ID.String()] = family

	member := &db_models.FamilyMember{
		UserID:   family.CreatorID,
		FamilyID: family.ID,
		Role:     db_models.RoleAdmin,
		JoinedAt: f.store.nextSeq(),
	}
	member.ID = uuid.New()
	f.store.members = append(f.store.members, member)
	return nil
}

func (f *fakeFamilyRepo) FindByID(ctx context.Context, id string) (*db_models.Family, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.families[id], nil
}

func (f *fakeFamilyRepo) Save(ctx context.Context, family *db_models.Family) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.families[family.ID.String()] = family
	return nil
}

func (f *fakeFamilyRepo) Delete(ctx context.Context, id string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	delete(f.store.families, id)

	// Cascade as the schema's foreign keys would.
	kept := f.store.members[:0]
	for _, member := range f.store.members {
		if member.FamilyID.String() != id {
			kept = append(kept, member)
		}
	}
	f.store.members = kept
	return nil
}

// --- FamilyMemberRepository ---

type fakeMemberRepo struct{ store *memStore }

func (f *fakeMemberRepo) Find(ctx context.Context, familyID, userID string) (*db_models.FamilyMember, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.store.findMember(familyID, userID), nil
}

func (f *fakeMemberRepo) ListByFamilyID(ctx context.Context, familyID string) ([]db_models.FamilyMember, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var members []db_models.FamilyMember
	for _, member := range f.store.members {
		if member.FamilyID.String() == familyID {
			withUser := *member
			if user, ok := f.store.users[member.UserID.String()]; ok {
				withUser.User = *user
			}
			members = append(members, withUser)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].JoinedAt < members[j].JoinedAt })
	return members, nil
}

func (f *fakeMemberRepo) ListByUserID(ctx context.Context, userID string) ([]db_models.FamilyMember, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var members []db_models.FamilyMember
	for _, member := range f.store.members {
		if member.UserID.String() == userID {
			members = append(members, *member)
		}
	}
	return members, nil
}

func (f *fakeMemberRepo) ListAdmins(ctx context.Context, familyID string) ([]db_models.FamilyMember, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var admins []db_models.FamilyMember
	for _, member := range f.store.members {
		if member.FamilyID.String() == familyID && member.Role == db_models.RoleAdmin {
			admins = append(admins, *member)
		}
	}
	return admins, nil
}

func (f *fakeMemberRepo) CountByFamilyID(ctx context.Context, familyID string) (int64, error) {
	members, _ := f.ListByFamilyID(ctx, familyID)
	return int64(len(members)), nil
}

func (f *fakeMemberRepo) CountAdmins(ctx context.Context, familyID string) (int64, error) {
	admins, _ := f.ListAdmins(ctx, familyID)
	return int64(len(admins)), nil
}

func (f *fakeMemberRepo) UpdateRole(ctx context.Context, familyID, userID, role string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if member := f.store.findMember(familyID, userID); member != nil {
		member.Role = role
	}
	return nil
}

func (f *fakeMemberRepo) Delete(ctx context.Context, familyID, userID string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	kept := f.store.members[:0]
	for _, member := range f.store.members {
		if member.FamilyID.String() == familyID && member.UserID.String() == userID {
			continue
		}
		kept = append(kept, member)
	}
	f.store.members = kept
	return nil
}

// --- InviteRepository ---

type fakeInviteRepo struct{ store *memStore }

func (f *fakeInviteRepo) Insert(ctx context.Context, invite *db_models.FamilyInvite) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	invite.ID = uuid.New()
	f.store.invites = append(f.store.invites, invite)
	return nil
}

func (f *fakeInviteRepo) FindByID(ctx context.Context, id string) (*db_models.FamilyInvite, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, invite := range f.store.invites {
		if invite.ID.String() == id {
			return invite, nil
		}
	}
	return nil, nil
}

func (f *fakeInviteRepo) FindByCode(ctx context.Context, code string) (*db_models.FamilyInvite, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, invite := range f.store.invites {
		if invite.Code == code {
			return invite, nil
		}
	}
	return nil, nil
}

func (f *fakeInviteRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	invite, _ := f.FindByCode(ctx, code)
	return invite != nil, nil
}

func (f *fakeInviteRepo) MarkExpired(ctx context.Context, id string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, invite := range f.store.invites {
		if invite.ID.String() == id && invite.Status == db_models.InviteStatusPending {
			invite.Status = db_models.InviteStatusExpired
		}
	}
	return nil
}

func (f *fakeInviteRepo) CountPendingByFamilyID(ctx context.Context, familyID string) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var count int64
	for _, invite := range f.store.invites {
		if invite.FamilyID.String() == familyID && invite.Status == db_models.InviteStatusPending {
			count++
		}
	}
	return count, nil
}

// --- JoinRequestRepository ---

type fakeJoinRequestRepo struct{ store *memStore }

func (f *fakeJoinRequestRepo) Insert(ctx context.Context, request *db_models.FamilyJoinRequest) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	request.ID = uuid.New()
	f.store.requests = append(f.store.requests, request)
	return nil
}

func (f *fakeJoinRequestRepo) FindByID(ctx context.Context, id string) (*db_models.FamilyJoinRequest, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, request := range f.store.requests {
		if request.ID.String() == id {
			if user, ok := f.store.users[request.UserID.String()]; ok {
				request.User = *user
			}
			return request, nil
		}
	}
	return nil, nil
}

func (f *fakeJoinRequestRepo) FindPending(ctx context.Context, userID, familyID string) (*db_models.FamilyJoinRequest, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, request := range f.store.requests {
		if request.UserID.String() == userID &&
			request.FamilyID.String() == familyID &&
			request.Status == db_models.JoinRequestStatusPending {
			return request, nil
		}
	}
	return nil, nil
}

func (f *fakeJoinRequestRepo) ListPendingByFamilyID(ctx context.Context, familyID string) ([]db_models.FamilyJoinRequest, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var requests []db_models.FamilyJoinRequest
	for _, request := range f.store.requests {
		if request.FamilyID.String() == familyID && request.Status == db_models.JoinRequestStatusPending {
			withUser := *request
			if user, ok := f.store.users[request.UserID.String()]; ok {
				withUser.User = *user
			}
			requests = append(requests, withUser)
		}
	}
	return requests, nil
}

func (f *fakeJoinRequestRepo) ListByUserID(ctx context.Context, userID string) ([]db_models.FamilyJoinRequest, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var requests []db_models.FamilyJoinRequest
	for _, request := range f.store.requests {
		if request.UserID.String() == userID {
			withUser := *request
			if user, ok := f.store.users[request.UserID.String()]; ok {
				withUser.User = *user
			}
			requests = append(requests, withUser)
		}
	}
	return requests, nil
}

func (f *fakeJoinRequestRepo) CountPendingByFamilyID(ctx context.Context, familyID string) (int64, error) {
	requests, _ := f.ListPendingByFamilyID(ctx, familyID)
	return int64(len(requests)), nil
}

func (f *fakeJoinRequestRepo) ApproveTx(ctx context.Context, request *db_models.FamilyJoinRequest, reviewerID uuid.UUID) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	member := &db_models.FamilyMember{
		UserID:   request.UserID,
		FamilyID: request.FamilyID,
		Role:     db_models.RoleMember,
		JoinedAt: f.store.nextSeq(),
	}
	member.ID = uuid.New()
	f.store.members = append(f.store.members, member)

	request.Status = db_models.JoinRequestStatusApproved
	request.ReviewerID = &reviewerID

	for _, invite := range f.store.invites {
		if invite.ID == request.InviteID && invite.Status == db_models.InviteStatusPending {
			invite.Status = db_models.InviteStatusAccepted
		}
	}
	return nil
}

func (f *fakeJoinRequestRepo) Reject(ctx context.Context, request *db_models.FamilyJoinRequest, reviewerID uuid.UUID) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	request.Status = db_models.JoinRequestStatusRejected
	request.ReviewerID = &reviewerID
	return nil
}

func (f *fakeJoinRequestRepo) Delete(ctx context.Context, id string) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	kept := f.store.requests[:0]
	for _, request := range f.store.requests {
		if request.ID.String() != id {
			kept = append(kept, request)
		}
	}
	f.store.requests = kept
	return nil
}

// --- TaskRepository ---

type fakeTaskRepo struct{ store *memStore }

func (f *fakeTaskRepo) Insert(ctx context.Context, task *db_models.Task) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	task.ID = uuid.New()
	f.store.tasks = append(f.store.tasks, task)
	return nil
}

func (f *fakeTaskRepo) FindByID(ctx context.Context, id string) (*db_models.Task, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, task := range f.store.tasks {
		if task.ID.String() == id {
			return task, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskRepo) ListByFamilyID(ctx context.Context, familyID string) ([]db_models.Task, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var tasks []db_models.Task
	for _, task := range f.store.tasks {
		if task.FamilyID.String() == familyID {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

func (f *fakeTaskRepo) Save(ctx context.Context, task *db_models.Task) error {
	return nil
}

// --- Notifier ---

type recordedEvent struct {
	Name     string
	FamilyID string
	UserID   string
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recordingNotifier) record(name, familyID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{Name: name, FamilyID: familyID, UserID: userID})
}

func (r *recordingNotifier) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.events))
	for _, event := range r.events {
		names = append(names, event.Name)
	}
	return names
}

func (r *recordingNotifier) JoinRequestCreated(ctx context.Context, familyID, requestID, userID, displayName, message string) {
	r.record("join-request-created", familyID, userID)
}

func (r *recordingNotifier) JoinRequestApproved(ctx context.Context, familyID, requestID, userID string) {
	r.record("join-request-approved", familyID, userID)
}

func (r *recordingNotifier) JoinRequestRejected(ctx context.Context, familyID, requestID, userID string) {
	r.record("join-request-rejected", familyID, userID)
}

func (r *recordingNotifier) MemberJoined(ctx context.Context, familyID, userID, displayName, role string) {
	r.record("member-joined", familyID, userID)
}

func (r *recordingNotifier) MemberRoleChanged(ctx context.Context, familyID, userID, role string) {
	r.record("member-role-changed", familyID, userID)
}

func (r *recordingNotifier) FamilyUpdated(ctx context.Context, familyID string) {
	r.record("family-updated", familyID, "")
}

func (r *recordingNotifier) TaskAssigned(ctx context.Context, familyID, taskID, userID string) {
	r.record("task-assigned", familyID, userID)
}

func (r *recordingNotifier) TaskUnassigned(ctx context.Context, familyID, taskID, userID string) {
	r.record("task-unassigned", familyID, userID)
}

func (r *recordingNotifier) TaskScheduleUpdated(ctx context.Context, familyID, taskID string) {
	r.record("task-schedule-updated", familyID, "")
}
