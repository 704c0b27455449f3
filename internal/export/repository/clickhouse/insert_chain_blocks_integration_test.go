package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/export/model"
)

func (s *RepositorySuite) TestInsertChainBlocks() {
	now := time.Now().UTC().Truncate(time.Second)
	blocks := []model.ChainBlock{
		newChainBlock("mainnet", 0, "a", now),
		newChainBlock("mainnet", 1, "b", now.Add(time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_chain_blocks", gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertChainBlocks(s.testCtx, blocks))
	s.Equal(uint64(len(blocks)), s.countRows("chain_blocks"))
}

func (s *RepositorySuite) TestInsertChainBlocksReplacesRowByHeight() {
	now := time.Now().UTC().Truncate(time.Second)

	stale := newChainBlock("mainnet", 3, "a", now)
	stale.Status = "tree"
	stale.HasData = false
	stale.HasUndo = false

	fresh := newChainBlock("mainnet", 3, "b", now.Add(time.Second))

	s.metrics.EXPECT().Observe("insert_chain_blocks", gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertChainBlocks(s.testCtx, []model.ChainBlock{stale}))

	time.Sleep(time.Second)

	s.Require().NoError(s.repo.InsertChainBlocks(s.testCtx, []model.ChainBlock{fresh}))

	rows, err := s.repo.conn.Query(s.testCtx, `
SELECT argMax(hash, exported_at), argMax(status, exported_at)
FROM chain_blocks
WHERE network = ? AND height = ?`, "mainnet", fresh.Height)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(rows.Close())
	}()

	var hash, status string
	s.Require().True(rows.Next())
	s.Require().NoError(rows.Scan(&hash, &status))
	s.Equal(fresh.Hash, hash)
	s.Equal(fresh.Status, status)
}
