package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/blockreader7000-backend/internal/export/model"
)

func (s *RepositorySuite) TestMaxContiguousHeight() {
	now := time.Now().UTC().Truncate(time.Second)
	blocks := []model.ChainBlock{
		newChainBlock("mainnet", 0, "a", now),
		newChainBlock("mainnet", 1, "b", now.Add(time.Second)),
		newChainBlock("mainnet", 2, "c", now.Add(2*time.Second)),
		newChainBlock("mainnet", 4, "d", now.Add(3*time.Second)),
	}
	s.seedChainBlocks(blocks)

	s.metrics.EXPECT().Observe("max_contiguous_height", gomock.Nil(), gomock.Any()).Times(1)

	height, err := s.repo.MaxContiguousHeight(s.testCtx, "mainnet")
	s.Require().NoError(err)
	s.Equal(int32(2), height)
}

func (s *RepositorySuite) TestMaxContiguousHeightEmptyTable() {
	s.metrics.EXPECT().Observe("max_contiguous_height", gomock.Nil(), gomock.Any()).Times(1)

	height, err := s.repo.MaxContiguousHeight(s.testCtx, "mainnet")
	s.Require().NoError(err)
	s.Equal(int32(-1), height)
}

func (s *RepositorySuite) TestMaxContiguousHeightFiltersByNetwork() {
	now := time.Now().UTC().Truncate(time.Second)
	blocks := []model.ChainBlock{
		newChainBlock("mainnet", 0, "a", now),
		newChainBlock("mainnet", 1, "b", now.Add(time.Second)),
		newChainBlock("testnet3", 0, "c", now),
		newChainBlock("testnet3", 1, "d", now.Add(time.Second)),
		newChainBlock("testnet3", 2, "e", now.Add(2*time.Second)),
	}
	s.seedChainBlocks(blocks)

	s.metrics.EXPECT().Observe("max_contiguous_height", gomock.Nil(), gomock.Any()).Times(1)

	height, err := s.repo.MaxContiguousHeight(s.testCtx, "mainnet")
	s.Require().NoError(err)
	s.Equal(int32(1), height)
}
