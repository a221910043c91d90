package models

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

// TestChannelDAO_Rename 重命名在同一事务里改频道行和引用旧名的条目行
func TestChannelDAO_Rename(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChannelDAO(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bb_channel` SET").
		WithArgs("design2", "design").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `bb_item` SET").
		WithArgs("design2", "design").
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	if err := dao.Rename("design", "design2"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// TestChannelDAO_RenameRollback 条目改名失败时整个事务回滚
func TestChannelDAO_RenameRollback(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChannelDAO(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bb_channel` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `bb_item` SET").
		WillReturnError(sqlmock.ErrCancelled)
	mock.ExpectRollback()

	if err := dao.Rename("design", "design2"); err == nil {
		t.Fatal("expected error when item update fails")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// TestChannelDAO_DeleteCascade 删除频道与其条目行在同一事务
func TestChannelDAO_DeleteCascade(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChannelDAO(gormDB)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `bb_item`").
		WithArgs("temp").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `bb_channel`").
		WithArgs("temp").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := dao.DeleteCascade("temp"); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

// TestChannelDAO_List 固定频道排前
func TestChannelDAO_List(t *testing.T) {
	gormDB, mock, sqlDB := newMockDB(t)
	defer sqlDB.Close()

	dao := NewChannelDAO(gormDB)

	mock.ExpectQuery("SELECT (.+) FROM `bb_channel`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "pinned"}).
			AddRow(uint64(3), "design", true).
			AddRow(uint64(1), "general", false))

	chs, err := dao.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(chs) != 2 || chs[0].Name != "design" {
		t.Fatalf("expected design first, got %#v", chs)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
