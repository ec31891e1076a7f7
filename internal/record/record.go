package record

import (
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"portalchess/internal/portalchess"
)

// Record 一步棋的记录，一行对应一次完整走子
type Record struct {
	GameID        string `parquet:"name=game_id, type=BYTE_ARRAY, convertedtype=UTF8" json:"game_id"`
	Ply           int32  `parquet:"name=ply, type=INT32" json:"ply"`
	From          string `parquet:"name=from, type=BYTE_ARRAY, convertedtype=UTF8" json:"from"`
	To            string `parquet:"name=to, type=BYTE_ARRAY, convertedtype=UTF8" json:"to"`
	PieceType     string `parquet:"name=piece_type, type=BYTE_ARRAY, convertedtype=UTF8" json:"piece_type"`
	Color         string `parquet:"name=color, type=BYTE_ARRAY, convertedtype=UTF8" json:"color"`
	UsedPortal    bool   `parquet:"name=used_portal, type=BOOLEAN" json:"used_portal"`
	PortalID      string `parquet:"name=portal_id, type=BYTE_ARRAY, convertedtype=UTF8" json:"portal_id,omitempty"`
	CapturedType  string `parquet:"name=captured_type, type=BYTE_ARRAY, convertedtype=UTF8" json:"captured_type,omitempty"`
	CapturedColor string `parquet:"name=captured_color, type=BYTE_ARRAY, convertedtype=UTF8" json:"captured_color,omitempty"`
}

// New 由走子结果拼一条记录；captured 可以是 nil
func New(gameID string, ply int, mv portalchess.Move, mover, captured *portalchess.Piece) Record {
	r := Record{
		GameID:     gameID,
		Ply:        int32(ply),
		From:       mv.From.String(),
		To:         mv.To.String(),
		UsedPortal: mv.UsedPortal,
		PortalID:   mv.PortalID,
	}
	if mover != nil {
		r.PieceType = mover.Type()
		r.Color = mover.Color().String()
	}
	if captured != nil {
		r.CapturedType = captured.Type()
		r.CapturedColor = captured.Color().String()
	}
	return r
}

func (r Record) String() string {
	s := fmt.Sprintf("%d. %s %s %s-%s", r.Ply, r.Color, r.PieceType, r.From, r.To)
	if r.UsedPortal {
		s += " via " + r.PortalID
	}
	if r.CapturedType != "" {
		s += fmt.Sprintf(" x %s %s", r.CapturedColor, r.CapturedType)
	}
	return s
}

// WriteParquet snappy 压缩写出
func WriteParquet(path string, records []Record, parallel int64) error {
	if parallel <= 0 {
		parallel = 1
	}
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(Record), parallel)
	if err != nil {
		fileWriter.Close()
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, rec := range records {
		if err := parquetWriter.Write(rec); err != nil {
			fileWriter.Close()
			return fmt.Errorf("write ply %d: %w", rec.Ply, err)
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		fileWriter.Close()
		return err
	}
	return fileWriter.Close()
}

func ReadParquet(path string, parallel int64) ([]Record, error) {
	if parallel <= 0 {
		parallel = 1
	}
	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(Record), parallel)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	num := int(parquetReader.GetNumRows())
	records := make([]Record, 0, num)
	batchSize := 1024
	for offset := 0; offset < num; offset += batchSize {
		remain := num - offset
		if remain < batchSize {
			batchSize = remain
		}
		batch := make([]Record, batchSize)
		if err := parquetReader.Read(&batch); err != nil {
			return nil, err
		}
		records = append(records, batch...)
	}
	return records, nil
}
