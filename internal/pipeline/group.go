package pipeline

// GroupByOrder 按订单号分组
// 分组顺序等于订单号在输入序列中的首次出现顺序；
// 缺少订单号的记录无法分组，作为跳过项上报而不是静默丢弃
func GroupByOrder(records []RawRecord) ([]Group, []SkippedRecord) {
	var groups []Group
	var skipped []SkippedRecord
	index := make(map[string]int)

	for i, r := range records {
		id, ok := canonicalID(r["id"])
		if !ok {
			skipped = append(skipped, SkippedRecord{
				Index:  i,
				Reason: "记录缺少订单号 (id)",
			})
			continue
		}

		pos, seen := index[id]
		if !seen {
			index[id] = len(groups)
			groups = append(groups, Group{OrderID: id, Records: []RawRecord{r}})
			continue
		}
		groups[pos].Records = append(groups[pos].Records, r)
	}

	return groups, skipped
}
