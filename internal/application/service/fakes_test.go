package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/tewodrosk/gibir-api/internal/domain/entity"
	"github.com/tewodrosk/gibir-api/internal/domain/enum"
	"github.com/tewodrosk/gibir-api/internal/domain/repository"
	"github.com/tewodrosk/gibir-api/pkg/pagination"
)

// In-memory repository fakes for service tests.

type fakeLineRepo struct {
	lines map[uuid.UUID][]entity.ReceiptLineItem
}

func newFakeLineRepo() *fakeLineRepo {
	return &fakeLineRepo{lines: make(map[uuid.UUID][]entity.ReceiptLineItem)}
}

func (f *fakeLineRepo) CreateBatch(_ context.Context, items []entity.ReceiptLineItem) error {
	for _, item := range items {
		f.lines[item.ReceiptID] = append(f.lines[item.ReceiptID], item)
	}
	return nil
}

func (f *fakeLineRepo) GetByReceiptID(_ context.Context, receiptID uuid.UUID) ([]entity.ReceiptLineItem, error) {
	return f.lines[receiptID], nil
}

func (f *fakeLineRepo) DeleteByReceiptID(_ context.Context, receiptID uuid.UUID) error {
	delete(f.lines, receiptID)
	return nil
}

type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*entity.Receipt
	lines    *fakeLineRepo
}

func newFakeReceiptRepo(lines *fakeLineRepo) *fakeReceiptRepo {
	return &fakeReceiptRepo{
		receipts: make(map[uuid.UUID]*entity.Receipt),
		lines:    lines,
	}
}

func (f *fakeReceiptRepo) Create(_ context.Context, receipt *entity.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	cp := *receipt
	f.receipts[receipt.ID] = &cp
	return nil
}

func (f *fakeReceiptRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Receipt, error) {
	r, ok := f.receipts[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReceiptRepo) GetByReceiptNo(_ context.Context, userID uuid.UUID, receiptNo string) (*entity.Receipt, error) {
	for _, r := range f.receipts {
		if r.UserID == userID && r.ReceiptNo == receiptNo {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeReceiptRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	r, err := f.GetByID(ctx, id)
	if r == nil || err != nil {
		return r, err
	}
	r.Items, _ = f.lines.GetByReceiptID(ctx, id)
	return r, nil
}

func (f *fakeReceiptRepo) Update(_ context.Context, receipt *entity.Receipt) error {
	if _, ok := f.receipts[receipt.ID]; !ok {
		return fmt.Errorf("receipt %s not found", receipt.ID)
	}
	cp := *receipt
	f.receipts[receipt.ID] = &cp
	return nil
}

func (f *fakeReceiptRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.receipts, id)
	return nil
}

func (f *fakeReceiptRepo) List(_ context.Context, userID uuid.UUID, _ *repository.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var out []entity.Receipt
	for _, r := range f.receipts {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceiptNo < out[j].ReceiptNo })
	return out, int64(len(out)), nil
}

func (f *fakeReceiptRepo) ListForPeriod(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entity.Receipt, error) {
	var out []entity.Receipt
	for id, r := range f.receipts {
		if r.UserID != userID {
			continue
		}
		if r.ReceiptDate.Before(start) || r.ReceiptDate.After(end) {
			continue
		}
		cp := *r
		cp.Items, _ = f.lines.GetByReceiptID(ctx, id)
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceiptNo < out[j].ReceiptNo })
	return out, nil
}

func (f *fakeReceiptRepo) CountByType(_ context.Context, userID uuid.UUID) (map[enum.ReceiptType]int64, error) {
	counts := make(map[enum.ReceiptType]int64)
	for _, r := range f.receipts {
		if r.UserID == userID {
			counts[r.ReceiptType]++
		}
	}
	return counts, nil
}

type fakeFilingRepo struct {
	filings map[string]*entity.VATFiling
}

func newFakeFilingRepo() *fakeFilingRepo {
	return &fakeFilingRepo{filings: make(map[string]*entity.VATFiling)}
}

func filingKey(userID uuid.UUID, month, year int) string {
	return fmt.Sprintf("%s/%d-%d", userID, year, month)
}

func (f *fakeFilingRepo) GetForPeriod(_ context.Context, userID uuid.UUID, month, year int) (*entity.VATFiling, error) {
	filing, ok := f.filings[filingKey(userID, month, year)]
	if !ok {
		return nil, nil
	}
	cp := *filing
	return &cp, nil
}

func (f *fakeFilingRepo) Upsert(_ context.Context, filing *entity.VATFiling) error {
	if filing.ID == uuid.Nil {
		filing.ID = uuid.New()
	}
	cp := *filing
	f.filings[filingKey(filing.UserID, filing.Month, filing.Year)] = &cp
	return nil
}

func (f *fakeFilingRepo) ListByYear(_ context.Context, userID uuid.UUID, year int) ([]entity.VATFiling, error) {
	var out []entity.VATFiling
	for _, filing := range f.filings {
		if filing.UserID == userID && filing.Year == year {
			out = append(out, *filing)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[uuid.UUID]*entity.Document)}
}

func (f *fakeDocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	cp := *doc
	f.docs[doc.ID] = &cp
	return nil
}

func (f *fakeDocumentRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *doc
	return &cp, nil
}

func (f *fakeDocumentRepo) Update(_ context.Context, doc *entity.Document) error {
	if _, ok := f.docs[doc.ID]; !ok {
		return fmt.Errorf("document %s not found", doc.ID)
	}
	cp := *doc
	f.docs[doc.ID] = &cp
	return nil
}

func (f *fakeDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.docs, id)
	return nil
}

func (f *fakeDocumentRepo) List(_ context.Context, params *repository.DocumentFilterParams) ([]entity.Document, int64, error) {
	var out []entity.Document
	for _, doc := range f.docs {
		if params.UserID != uuid.Nil && doc.UserID != params.UserID {
			continue
		}
		if params.Status != nil && doc.Status != *params.Status {
			continue
		}
		out = append(out, *doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FileName < out[j].FileName })
	return out, int64(len(out)), nil
}

func (f *fakeDocumentRepo) CountByStatus(_ context.Context, userID uuid.UUID) (map[enum.DocumentStatus]int64, error) {
	counts := make(map[enum.DocumentStatus]int64)
	for _, doc := range f.docs {
		if userID != uuid.Nil && doc.UserID != userID {
			continue
		}
		counts[doc.Status]++
	}
	return counts, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	roles map[uuid.UUID][]uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[uuid.UUID]*entity.User),
		roles: make(map[uuid.UUID][]uint),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user %s not found", user.ID)
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.User, int64, error) {
	var out []entity.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) GetWithRoles(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeUserRepo) AssignRole(_ context.Context, userID uuid.UUID, roleID uint) error {
	f.roles[userID] = append(f.roles[userID], roleID)
	return nil
}

type fakeRoleRepo struct {
	roles map[string]*entity.Role
}

func newFakeRoleRepo(names ...string) *fakeRoleRepo {
	f := &fakeRoleRepo{roles: make(map[string]*entity.Role)}
	for i, name := range names {
		f.roles[name] = &entity.Role{ID: uint(i + 1), Name: name}
	}
	return f
}

func (f *fakeRoleRepo) Create(_ context.Context, role *entity.Role) error {
	f.roles[role.Name] = role
	return nil
}

func (f *fakeRoleRepo) GetByName(_ context.Context, name string) (*entity.Role, error) {
	role, ok := f.roles[name]
	if !ok {
		return nil, nil
	}
	return role, nil
}

func (f *fakeRoleRepo) List(_ context.Context) ([]entity.Role, error) {
	var out []entity.Role
	for _, role := range f.roles {
		out = append(out, *role)
	}
	return out, nil
}
