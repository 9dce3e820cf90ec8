package sui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/suiwatch/internal/checkpointtail"
	"github.com/gabapcia/suiwatch/internal/pkg/logger"
)

// Amount is a signed balance change amount. The service may serialize it either
// as a JSON string or as a JSON number; both must hold a base-10 integer that
// fits in 64 bits.
type Amount int64

// UnmarshalJSON parses a quoted or bare base-10 integer.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if bytes.HasPrefix(data, []byte(`"`)) {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", data, err)
	}

	*a = Amount(v)
	return nil
}

type (
	// AnchorResponse is the data member of a discovery query response.
	AnchorResponse struct {
		Checkpoints *struct {
			PageInfo struct {
				StartCursor *string `json:"startCursor"`
			} `json:"pageInfo"`
			Nodes []struct {
				Digest    string `json:"digest"`
				Timestamp string `json:"timestamp"`
			} `json:"nodes"`
		} `json:"checkpoints"`
	}

	// BalanceChangeResponse is one entry of a transaction block's balance changes.
	BalanceChangeResponse struct {
		Owner *struct {
			Address string `json:"address"`
		} `json:"owner"`
		Amount *Amount `json:"amount"`
	}

	// CheckpointResponse is one checkpoint node of a forward page.
	CheckpointResponse struct {
		Timestamp         string `json:"timestamp"`
		TransactionBlocks struct {
			Edges []struct {
				Node struct {
					Effects *struct {
						BalanceChanges struct {
							Nodes []BalanceChangeResponse `json:"nodes"`
						} `json:"balanceChanges"`
					} `json:"effects"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"transactionBlocks"`
	}

	// PageResponse is the data member of a forward page query response.
	PageResponse struct {
		Checkpoints *struct {
			PageInfo struct {
				HasNextPage bool    `json:"hasNextPage"`
				EndCursor   *string `json:"endCursor"`
			} `json:"pageInfo"`
			Nodes []CheckpointResponse `json:"nodes"`
		} `json:"checkpoints"`
	}
)

// malformed wraps err, or the reason alone, in checkpointtail.ErrMalformedResponse.
func malformed(reason string, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %w", checkpointtail.ErrMalformedResponse, reason, err)
	}

	return fmt.Errorf("%w: %s", checkpointtail.ErrMalformedResponse, reason)
}

// decodeAnchor projects a discovery response onto a LatestAnchor.
func decodeAnchor(data json.RawMessage) (checkpointtail.LatestAnchor, error) {
	var resp AnchorResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return checkpointtail.LatestAnchor{}, malformed("decoding anchor", err)
	}

	if resp.Checkpoints == nil {
		return checkpointtail.LatestAnchor{}, malformed("missing checkpoints", nil)
	}

	var anchor checkpointtail.LatestAnchor
	if startCursor := resp.Checkpoints.PageInfo.StartCursor; startCursor != nil {
		anchor.StartCursor = checkpointtail.Cursor(*startCursor)
	}
	if anchor.StartCursor.IsEmpty() {
		return checkpointtail.LatestAnchor{}, malformed("missing startCursor", nil)
	}

	if len(resp.Checkpoints.Nodes) > 0 {
		anchor.Digest = resp.Checkpoints.Nodes[0].Digest
	}

	return anchor, nil
}

// decodePage projects a forward page response onto a CheckpointPage, keeping the
// balance changes in the order they appear in the document.
func decodePage(data json.RawMessage) (checkpointtail.CheckpointPage, error) {
	var resp PageResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return checkpointtail.CheckpointPage{}, malformed("decoding page", err)
	}

	if resp.Checkpoints == nil {
		return checkpointtail.CheckpointPage{}, malformed("missing checkpoints", nil)
	}

	info := resp.Checkpoints.PageInfo
	nodes := resp.Checkpoints.Nodes

	var endCursor checkpointtail.Cursor
	if info.EndCursor != nil {
		endCursor = checkpointtail.Cursor(*info.EndCursor)
	}
	if endCursor.IsEmpty() && (len(nodes) > 0 || info.HasNextPage) {
		return checkpointtail.CheckpointPage{}, malformed("missing endCursor", nil)
	}

	changes := make([]checkpointtail.BalanceChange, 0)
	for i, checkpoint := range nodes {
		for j, edge := range checkpoint.TransactionBlocks.Edges {
			if edge.Node.Effects == nil {
				continue
			}

			for k, bc := range edge.Node.Effects.BalanceChanges.Nodes {
				if bc.Owner == nil || bc.Owner.Address == "" {
					return checkpointtail.CheckpointPage{}, malformed(fmt.Sprintf("checkpoint %d transaction %d change %d: missing owner address", i, j, k), nil)
				}

				if bc.Amount == nil {
					return checkpointtail.CheckpointPage{}, malformed(fmt.Sprintf("checkpoint %d transaction %d change %d: missing amount", i, j, k), nil)
				}

				changes = append(changes, checkpointtail.BalanceChange{
					Address: bc.Owner.Address,
					Amount:  int64(*bc.Amount),
				})
			}
		}
	}

	return checkpointtail.CheckpointPage{
		EndCursor:      endCursor,
		HasNextPage:    info.HasNextPage,
		Checkpoints:    len(nodes),
		BalanceChanges: changes,
	}, nil
}

// LatestAnchor implements the checkpointtail.CheckpointSource interface.
func (c *client) LatestAnchor(ctx context.Context) (checkpointtail.LatestAnchor, error) {
	data, err := c.query(ctx, c.discoveryQuery, nil)
	if err != nil {
		return checkpointtail.LatestAnchor{}, err
	}

	return decodeAnchor(data)
}

// CheckpointPage implements the checkpointtail.CheckpointSource interface.
func (c *client) CheckpointPage(ctx context.Context, after checkpointtail.Cursor) (checkpointtail.CheckpointPage, error) {
	data, err := c.query(ctx, c.pageQuery, pageVariables(string(after)))
	if err != nil {
		return checkpointtail.CheckpointPage{}, err
	}

	page, err := decodePage(data)
	if err != nil {
		if errors.Is(err, checkpointtail.ErrMalformedResponse) {
			logger.Debug(ctx, "undecodable checkpoint page", "checkpoint.cursor", after, "response.data", string(data))
		}
		return checkpointtail.CheckpointPage{}, err
	}

	return page, nil
}
