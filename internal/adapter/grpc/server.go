package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	moneybookv1 "github.com/simaogato/moneybook-backend/internal/adapter/grpc/moneybook/v1"
	"github.com/simaogato/moneybook-backend/internal/domain"
	"github.com/simaogato/moneybook-backend/internal/usecase/asset"
	"github.com/simaogato/moneybook-backend/internal/usecase/book"
	"github.com/simaogato/moneybook-backend/internal/usecase/ledger"
	"github.com/simaogato/moneybook-backend/internal/usecase/schedule"
	"github.com/simaogato/moneybook-backend/internal/usecase/transfer"
)

// Server implements the MoneybookService gRPC server
type Server struct {
	moneybookv1.UnimplementedMoneybookServiceServer

	LedgerService   *ledger.Service
	TransferService *transfer.Service
	ScheduleService *schedule.Service
	AssetService    *asset.Service
	BookService     *book.Service
}

// NewServer creates a new gRPC server instance
func NewServer(
	ledgerService *ledger.Service,
	transferService *transfer.Service,
	scheduleService *schedule.Service,
	assetService *asset.Service,
	bookService *book.Service,
) *Server {
	return &Server{
		LedgerService:   ledgerService,
		TransferService: transferService,
		ScheduleService: scheduleService,
		AssetService:    assetService,
		BookService:     bookService,
	}
}

// CreateRecord handles the CreateRecord RPC
func (s *Server) CreateRecord(ctx context.Context, req *moneybookv1.CreateRecordRequest) (*moneybookv1.RecordResponse, error) {
	bookID, err := uuid.Parse(req.BookId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid book_id format: %v", err)
	}

	assetID, err := parseOptionalID(req.AssetId, "asset_id")
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	recordType, err := protoRecordTypeToDomain(req.Type)
	if err != nil {
		return nil, err
	}

	if req.Date == nil {
		return nil, status.Errorf(codes.InvalidArgument, "date is required")
	}

	input := ledger.CreateRecordInput{
		BookID:            bookID,
		AssetID:           assetID,
		Type:              recordType,
		Category:          req.Category,
		Subcategory:       req.Subcategory,
		Amount:            amount,
		Note:              req.Note,
		Date:              req.Date.AsTime(),
		IsMarkedTaxReturn: req.IsMarkedTaxReturn,
	}

	record, err := s.LedgerService.CreateRecord(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.RecordResponse{Record: domainRecordToProto(record)}, nil
}

// UpdateRecord handles the UpdateRecord RPC
func (s *Server) UpdateRecord(ctx context.Context, req *moneybookv1.UpdateRecordRequest) (*moneybookv1.RecordResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	var input ledger.UpdateRecordInput

	if req.Type != nil {
		recordType, err := protoRecordTypeToDomain(*req.Type)
		if err != nil {
			return nil, err
		}
		input.Type = &recordType
	}
	input.Category = req.Category
	input.Subcategory = req.Subcategory
	input.Note = req.Note
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
		}
		input.Amount = &amount
	}
	if req.Date != nil {
		date := req.Date.AsTime()
		input.Date = &date
	}
	input.IsMarkedTaxReturn = req.IsMarkedTaxReturn
	if req.AssetId != nil {
		assetID, err := uuid.Parse(*req.AssetId)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid asset_id format: %v", err)
		}
		input.AssetID = &assetID
	}
	input.ClearAsset = req.ClearAsset

	record, err := s.LedgerService.UpdateRecord(ctx, id, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.RecordResponse{Record: domainRecordToProto(record)}, nil
}

// DeleteRecord handles the DeleteRecord RPC
func (s *Server) DeleteRecord(ctx context.Context, req *moneybookv1.DeleteRecordRequest) (*moneybookv1.DeleteResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	if err := s.LedgerService.DeleteRecord(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.DeleteResponse{Deleted: true}, nil
}

// ListRecords handles the ListRecords RPC
func (s *Server) ListRecords(ctx context.Context, req *moneybookv1.ListRecordsRequest) (*moneybookv1.ListRecordsResponse, error) {
	bookID, err := uuid.Parse(req.BookId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid book_id format: %v", err)
	}
	if req.From == nil || req.To == nil {
		return nil, status.Errorf(codes.InvalidArgument, "from and to are required")
	}

	records, err := s.LedgerService.ListRecords(ctx, bookID, req.From.AsTime(), req.To.AsTime())
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.ListRecordsResponse{Records: domainRecordsToProto(records)}, nil
}

// CreateTransfer handles the CreateTransfer RPC
func (s *Server) CreateTransfer(ctx context.Context, req *moneybookv1.CreateTransferRequest) (*moneybookv1.TransferResponse, error) {
	bookID, err := uuid.Parse(req.BookId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid book_id format: %v", err)
	}
	fromID, err := uuid.Parse(req.FromAssetId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid from_asset_id format: %v", err)
	}
	toID, err := uuid.Parse(req.ToAssetId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid to_asset_id format: %v", err)
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}
	if req.Date == nil {
		return nil, status.Errorf(codes.InvalidArgument, "date is required")
	}

	input := transfer.CreateTransferInput{
		BookID:      bookID,
		FromAssetID: fromID,
		ToAssetID:   toID,
		Amount:      amount,
		Note:        req.Note,
		Date:        req.Date.AsTime(),
	}

	created, err := s.TransferService.CreateTransfer(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.TransferResponse{Transfer: domainTransferToProto(created)}, nil
}

// UpdateTransfer handles the UpdateTransfer RPC
func (s *Server) UpdateTransfer(ctx context.Context, req *moneybookv1.UpdateTransferRequest) (*moneybookv1.TransferResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	var input transfer.UpdateTransferInput
	if req.FromAssetId != nil {
		fromID, err := uuid.Parse(*req.FromAssetId)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid from_asset_id format: %v", err)
		}
		input.FromAssetID = &fromID
	}
	if req.ToAssetId != nil {
		toID, err := uuid.Parse(*req.ToAssetId)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid to_asset_id format: %v", err)
		}
		input.ToAssetID = &toID
	}
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
		}
		input.Amount = &amount
	}
	input.Note = req.Note
	if req.Date != nil {
		date := req.Date.AsTime()
		input.Date = &date
	}

	updated, err := s.TransferService.UpdateTransfer(ctx, id, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.TransferResponse{Transfer: domainTransferToProto(updated)}, nil
}

// DeleteTransfer handles the DeleteTransfer RPC
func (s *Server) DeleteTransfer(ctx context.Context, req *moneybookv1.DeleteTransferRequest) (*moneybookv1.DeleteResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	if err := s.TransferService.DeleteTransfer(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.DeleteResponse{Deleted: true}, nil
}

// CreateScheduledRecord handles the CreateScheduledRecord RPC
func (s *Server) CreateScheduledRecord(ctx context.Context, req *moneybookv1.CreateScheduledRecordRequest) (*moneybookv1.ScheduledRecordResponse, error) {
	bookID, err := uuid.Parse(req.BookId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid book_id format: %v", err)
	}
	assetID, err := parseOptionalID(req.AssetId, "asset_id")
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}
	recordType, err := protoRecordTypeToDomain(req.Type)
	if err != nil {
		return nil, err
	}
	frequency, err := protoFrequencyToDomain(req.Frequency)
	if err != nil {
		return nil, err
	}
	if req.StartDate == nil {
		return nil, status.Errorf(codes.InvalidArgument, "start_date is required")
	}

	weekDays := make([]int, 0, len(req.WeekDays))
	for _, d := range req.WeekDays {
		weekDays = append(weekDays, int(d))
	}

	var endDate *time.Time
	if req.EndDate != nil {
		e := req.EndDate.AsTime()
		endDate = &e
	}

	input := schedule.CreateScheduleInput{
		BookID:            bookID,
		AssetID:           assetID,
		Type:              recordType,
		Category:          req.Category,
		Subcategory:       req.Subcategory,
		Amount:            amount,
		Note:              req.Note,
		IsMarkedTaxReturn: req.IsMarkedTaxReturn,
		Frequency:         frequency,
		NumOfDays:         int(req.NumOfDays),
		WeekDays:          weekDays,
		MonthDay:          int(req.MonthDay),
		StartDate:         req.StartDate.AsTime(),
		EndDate:           endDate,
	}

	sched, err := s.ScheduleService.CreateSchedule(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.ScheduledRecordResponse{Schedule: domainScheduleToProto(sched)}, nil
}

// PauseSchedule handles the PauseSchedule RPC
func (s *Server) PauseSchedule(ctx context.Context, req *moneybookv1.ScheduleActionRequest) (*moneybookv1.ScheduleActionResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	if err := s.ScheduleService.PauseSchedule(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.ScheduleActionResponse{Status: string(domain.ScheduleStatusPaused)}, nil
}

// ResumeSchedule handles the ResumeSchedule RPC
func (s *Server) ResumeSchedule(ctx context.Context, req *moneybookv1.ScheduleActionRequest) (*moneybookv1.ScheduleActionResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	if err := s.ScheduleService.ResumeSchedule(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.ScheduleActionResponse{Status: string(domain.ScheduleStatusActive)}, nil
}

// ExecuteScheduleNow handles the ExecuteScheduleNow RPC
func (s *Server) ExecuteScheduleNow(ctx context.Context, req *moneybookv1.ScheduleActionRequest) (*moneybookv1.RecordResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	record, err := s.ScheduleService.ExecuteScheduleNow(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.RecordResponse{Record: domainRecordToProto(record)}, nil
}

// ListSchedules handles the ListSchedules RPC
func (s *Server) ListSchedules(ctx context.Context, req *moneybookv1.ListSchedulesRequest) (*moneybookv1.ListSchedulesResponse, error) {
	// Unspecified enum values mean no filter
	var statusFilter domain.ScheduleStatus
	if req.Status != moneybookv1.ScheduleStatus_SCHEDULE_STATUS_UNSPECIFIED {
		statusFilter = protoScheduleStatusToDomain(req.Status)
	}
	var frequencyFilter domain.Frequency
	if req.Frequency != moneybookv1.Frequency_FREQUENCY_UNSPECIFIED {
		f, err := protoFrequencyToDomain(req.Frequency)
		if err != nil {
			return nil, err
		}
		frequencyFilter = f
	}

	schedules, err := s.ScheduleService.ListSchedules(ctx, statusFilter, frequencyFilter)
	if err != nil {
		return nil, mapError(err)
	}

	protoSchedules := make([]*moneybookv1.ScheduledRecord, 0, len(schedules))
	for _, sched := range schedules {
		protoSchedules = append(protoSchedules, domainScheduleToProto(sched))
	}

	return &moneybookv1.ListSchedulesResponse{Schedules: protoSchedules}, nil
}

// ListGeneratedRecords handles the ListGeneratedRecords RPC
func (s *Server) ListGeneratedRecords(ctx context.Context, req *moneybookv1.ListGeneratedRecordsRequest) (*moneybookv1.ListRecordsResponse, error) {
	scheduleID, err := uuid.Parse(req.ScheduleId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid schedule_id format: %v", err)
	}

	records, err := s.LedgerService.ListGenerated(ctx, scheduleID)
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.ListRecordsResponse{Records: domainRecordsToProto(records)}, nil
}

// CreateBook handles the CreateBook RPC
func (s *Server) CreateBook(ctx context.Context, req *moneybookv1.CreateBookRequest) (*moneybookv1.BookResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	var monthlyGoal *decimal.Decimal
	if req.MonthlyGoal != "" {
		goal, err := decimal.NewFromString(req.MonthlyGoal)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid monthly_goal format: %v", err)
		}
		monthlyGoal = &goal
	}

	created, err := s.BookService.CreateBook(ctx, &domain.Book{
		UserID:      userID,
		Name:        req.Name,
		Note:        req.Note,
		MonthlyGoal: monthlyGoal,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.BookResponse{Book: domainBookToProto(created)}, nil
}

// CreateAsset handles the CreateAsset RPC
func (s *Server) CreateAsset(ctx context.Context, req *moneybookv1.CreateAssetRequest) (*moneybookv1.AssetResponse, error) {
	groupID, err := parseOptionalID(req.GroupId, "group_id")
	if err != nil {
		return nil, err
	}

	balance := decimal.Zero
	if req.Balance != "" {
		balance, err = decimal.NewFromString(req.Balance)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid balance format: %v", err)
		}
	}
	creditLimit := decimal.Zero
	if req.CreditLimit != "" {
		creditLimit, err = decimal.NewFromString(req.CreditLimit)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid credit_limit format: %v", err)
		}
	}

	created, err := s.AssetService.CreateAsset(ctx, &domain.Asset{
		Name:         req.Name,
		GroupID:      groupID,
		Balance:      balance,
		IsCredit:     req.IsCredit,
		CreditLimit:  creditLimit,
		BillDay:      int(req.BillDay),
		RepaymentDay: int(req.RepaymentDay),
		IsTotalAsset: req.IsTotalAsset,
		IsNoBudget:   req.IsNoBudget,
		Note:         req.Note,
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.AssetResponse{Asset: domainAssetToProto(created)}, nil
}

// GetAsset handles the GetAsset RPC
func (s *Server) GetAsset(ctx context.Context, req *moneybookv1.GetAssetRequest) (*moneybookv1.AssetResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}

	found, err := s.AssetService.GetAsset(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.AssetResponse{Asset: domainAssetToProto(found)}, nil
}

// OverrideAssetBalance handles the OverrideAssetBalance RPC
func (s *Server) OverrideAssetBalance(ctx context.Context, req *moneybookv1.OverrideAssetBalanceRequest) (*moneybookv1.AssetResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id format: %v", err)
	}
	balance, err := decimal.NewFromString(req.Balance)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid balance format: %v", err)
	}

	if err := s.AssetService.OverrideBalance(ctx, id, balance); err != nil {
		return nil, mapError(err)
	}

	found, err := s.AssetService.GetAsset(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}

	return &moneybookv1.AssetResponse{Asset: domainAssetToProto(found)}, nil
}

// parseOptionalID parses an ID field where the empty string means unset
func parseOptionalID(raw, field string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", field, err)
	}
	return &id, nil
}

// protoRecordTypeToDomain converts a proto RecordType enum to a domain RecordType
func protoRecordTypeToDomain(t moneybookv1.RecordType) (domain.RecordType, error) {
	switch t {
	case moneybookv1.RecordType_RECORD_TYPE_INCOME:
		return domain.RecordTypeIncome, nil
	case moneybookv1.RecordType_RECORD_TYPE_EXPENSE:
		return domain.RecordTypeExpense, nil
	default:
		return "", status.Errorf(codes.InvalidArgument, "record type must be income or expense")
	}
}

// domainRecordTypeToProto converts a domain RecordType to a proto RecordType enum
func domainRecordTypeToProto(t domain.RecordType) moneybookv1.RecordType {
	switch t {
	case domain.RecordTypeIncome:
		return moneybookv1.RecordType_RECORD_TYPE_INCOME
	case domain.RecordTypeExpense:
		return moneybookv1.RecordType_RECORD_TYPE_EXPENSE
	default:
		return moneybookv1.RecordType_RECORD_TYPE_UNSPECIFIED
	}
}

// protoFrequencyToDomain converts a proto Frequency enum to a domain Frequency
func protoFrequencyToDomain(f moneybookv1.Frequency) (domain.Frequency, error) {
	switch f {
	case moneybookv1.Frequency_FREQUENCY_DAILY:
		return domain.FrequencyDaily, nil
	case moneybookv1.Frequency_FREQUENCY_WEEKLY:
		return domain.FrequencyWeekly, nil
	case moneybookv1.Frequency_FREQUENCY_MONTHLY:
		return domain.FrequencyMonthly, nil
	case moneybookv1.Frequency_FREQUENCY_ANNUALLY:
		return domain.FrequencyAnnually, nil
	default:
		return "", status.Errorf(codes.InvalidArgument, "invalid frequency")
	}
}

// domainFrequencyToProto converts a domain Frequency to a proto Frequency enum
func domainFrequencyToProto(f domain.Frequency) moneybookv1.Frequency {
	switch f {
	case domain.FrequencyDaily:
		return moneybookv1.Frequency_FREQUENCY_DAILY
	case domain.FrequencyWeekly:
		return moneybookv1.Frequency_FREQUENCY_WEEKLY
	case domain.FrequencyMonthly:
		return moneybookv1.Frequency_FREQUENCY_MONTHLY
	case domain.FrequencyAnnually:
		return moneybookv1.Frequency_FREQUENCY_ANNUALLY
	default:
		return moneybookv1.Frequency_FREQUENCY_UNSPECIFIED
	}
}

// protoScheduleStatusToDomain converts a proto ScheduleStatus enum to a domain ScheduleStatus
func protoScheduleStatusToDomain(s moneybookv1.ScheduleStatus) domain.ScheduleStatus {
	switch s {
	case moneybookv1.ScheduleStatus_SCHEDULE_STATUS_ACTIVE:
		return domain.ScheduleStatusActive
	case moneybookv1.ScheduleStatus_SCHEDULE_STATUS_PAUSED:
		return domain.ScheduleStatusPaused
	case moneybookv1.ScheduleStatus_SCHEDULE_STATUS_COMPLETED:
		return domain.ScheduleStatusCompleted
	default:
		return ""
	}
}

// domainScheduleStatusToProto converts a domain ScheduleStatus to a proto ScheduleStatus enum
func domainScheduleStatusToProto(s domain.ScheduleStatus) moneybookv1.ScheduleStatus {
	switch s {
	case domain.ScheduleStatusActive:
		return moneybookv1.ScheduleStatus_SCHEDULE_STATUS_ACTIVE
	case domain.ScheduleStatusPaused:
		return moneybookv1.ScheduleStatus_SCHEDULE_STATUS_PAUSED
	case domain.ScheduleStatusCompleted:
		return moneybookv1.ScheduleStatus_SCHEDULE_STATUS_COMPLETED
	default:
		return moneybookv1.ScheduleStatus_SCHEDULE_STATUS_UNSPECIFIED
	}
}

// domainRecordToProto converts a domain Record to a proto Record message
func domainRecordToProto(r *domain.Record) *moneybookv1.Record {
	protoRecord := &moneybookv1.Record{
		Id:                r.ID.String(),
		BookId:            r.BookID.String(),
		Type:              domainRecordTypeToProto(r.Type),
		Category:          r.Category,
		Subcategory:       r.Subcategory,
		Amount:            r.Amount.String(),
		Note:              r.Note,
		Date:              timestamppb.New(r.Date),
		IsMarkedTaxReturn: r.IsMarkedTaxReturn,
	}
	if r.AssetID != nil {
		protoRecord.AssetId = r.AssetID.String()
	}
	if r.GeneratedBy != nil {
		protoRecord.GeneratedBy = r.GeneratedBy.String()
	}
	return protoRecord
}

func domainRecordsToProto(records []*domain.Record) []*moneybookv1.Record {
	protoRecords := make([]*moneybookv1.Record, 0, len(records))
	for _, r := range records {
		protoRecords = append(protoRecords, domainRecordToProto(r))
	}
	return protoRecords
}

// domainTransferToProto converts a domain Transfer to a proto Transfer message
func domainTransferToProto(t *domain.Transfer) *moneybookv1.Transfer {
	protoTransfer := &moneybookv1.Transfer{
		Id:     t.ID.String(),
		BookId: t.BookID.String(),
		Amount: t.Amount.String(),
		Note:   t.Note,
		Date:   timestamppb.New(t.Date),
	}
	if t.FromAssetID != nil {
		protoTransfer.FromAssetId = t.FromAssetID.String()
	}
	if t.ToAssetID != nil {
		protoTransfer.ToAssetId = t.ToAssetID.String()
	}
	return protoTransfer
}

// domainScheduleToProto converts a domain ScheduledRecord to a proto message
func domainScheduleToProto(sched *domain.ScheduledRecord) *moneybookv1.ScheduledRecord {
	weekDays := make([]int32, 0, len(sched.WeekDays))
	for _, d := range sched.WeekDays {
		weekDays = append(weekDays, int32(d))
	}

	protoSched := &moneybookv1.ScheduledRecord{
		Template:       domainRecordToProto(&sched.Record),
		Frequency:      domainFrequencyToProto(sched.Frequency),
		NumOfDays:      int32(sched.NumOfDays),
		WeekDays:       weekDays,
		MonthDay:       int32(sched.MonthDay),
		StartDate:      timestamppb.New(sched.StartDate),
		NextOccurrence: timestamppb.New(sched.NextOccurrence),
		Status:         domainScheduleStatusToProto(sched.Status),
	}
	if sched.EndDate != nil {
		protoSched.EndDate = timestamppb.New(*sched.EndDate)
	}
	if sched.LastRun != nil {
		protoSched.LastRun = timestamppb.New(*sched.LastRun)
	}
	return protoSched
}

// domainAssetToProto converts a domain Asset to a proto Asset message
func domainAssetToProto(a *domain.Asset) *moneybookv1.Asset {
	protoAsset := &moneybookv1.Asset{
		Id:           a.ID.String(),
		Name:         a.Name,
		Balance:      a.Balance.String(),
		IsCredit:     a.IsCredit,
		CreditLimit:  a.CreditLimit.String(),
		BillDay:      int32(a.BillDay),
		RepaymentDay: int32(a.RepaymentDay),
		IsTotalAsset: a.IsTotalAsset,
		IsNoBudget:   a.IsNoBudget,
		Note:         a.Note,
	}
	if a.GroupID != nil {
		protoAsset.GroupId = a.GroupID.String()
	}
	return protoAsset
}

// domainBookToProto converts a domain Book to a proto Book message
func domainBookToProto(b *domain.Book) *moneybookv1.Book {
	protoBook := &moneybookv1.Book{
		Id:     b.ID.String(),
		UserId: b.UserID.String(),
		Name:   b.Name,
		Note:   b.Note,
	}
	if b.MonthlyGoal != nil {
		protoBook.MonthlyGoal = b.MonthlyGoal.String()
	}
	return protoBook
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Errorf(codes.FailedPrecondition, "%s", err.Error())
	case errors.Is(err, domain.ErrLockTimeout):
		return status.Errorf(codes.Unavailable, "%s", err.Error())
	}

	// Validation errors from the domain layer arrive as plain errors
	errorMsg := err.Error()
	if strings.Contains(errorMsg, "must be") ||
		strings.Contains(errorMsg, "must have") ||
		strings.Contains(errorMsg, "cannot") ||
		strings.Contains(errorMsg, "required") ||
		strings.Contains(errorMsg, "invalid") {
		return status.Errorf(codes.InvalidArgument, "%s", errorMsg)
	}

	return status.Errorf(codes.Internal, "%s", errorMsg)
}
