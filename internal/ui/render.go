package ui

import (
	"fmt"
	"strconv"
	"strings"

	"greenmason/internal/models"
	"greenmason/internal/session"
)

func kv(key, value string) string {
	return InfoKeyStyle.Render(key) + InfoValueStyle.Render(value)
}

// Profile renders the active identity and its cached score.
func Profile(snap session.Snapshot) string {
	if snap.State != session.Identified || snap.Identity == nil {
		return MutedStyle.Render("No identity claimed. Run `greenmason claim <name>` to start earning Green Score.")
	}

	lines := []string{
		HeaderStyle.Render(snap.Identity.DisplayName),
		kv("Username", snap.Identity.Username),
	}
	if snap.Profile == nil {
		lines = append(lines, MutedStyle.Render("Profile unavailable, the server could not be reached."))
		return CardStyle.Render(strings.Join(lines, "\n"))
	}
	lines = append(lines,
		kv("Green Score", PointsStyle.Render(strconv.Itoa(snap.Profile.TotalScore))),
		kv("Actions", strconv.Itoa(snap.Profile.ActionsCount)),
	)
	if snap.Profile.Rank != nil {
		lines = append(lines, kv("Rank", "#"+strconv.Itoa(*snap.Profile.Rank)))
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

func Classification(c *models.ClassificationResult) string {
	lines := []string{
		HeaderStyle.Render(c.ItemName),
		kv("Category", CategoryStyle(c.Category).Render(c.Category)),
		kv("Confidence", c.Confidence),
		kv("Points", PointsStyle.Render("+"+strconv.Itoa(c.PointsEarned))),
		"",
		c.DisposalInstructions,
	}
	if c.GMUTip != "" {
		lines = append(lines, "", SuccessStyle.Render("Mason tip: ")+c.GMUTip)
	}
	if c.FunFact != "" {
		lines = append(lines, MutedStyle.Render("Fun fact: "+c.FunFact))
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

// Leaderboard renders entries, highlighting username when present.
func Leaderboard(board *models.LeaderboardResponse, username string) string {
	if len(board.Leaderboard) == 0 {
		return MutedStyle.Render("Nobody has scored yet. Be the first!")
	}
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Campus Green Score Leaderboard"))
	b.WriteString("\n")
	for _, e := range board.Leaderboard {
		row := fmt.Sprintf("%3d. %-24s %6d pts  %4d actions", e.Rank, e.DisplayName, e.TotalScore, e.ActionsCount)
		if e.Username == username {
			row = PointsStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func Pledges(list *models.PledgesResponse) string {
	if len(list.Pledges) == 0 {
		return MutedStyle.Render("No pledges yet.")
	}
	cards := make([]string, 0, len(list.Pledges))
	for _, p := range list.Pledges {
		cards = append(cards, CardStyle.Render(
			InfoValueStyle.Render(p.PledgeText)+"\n"+
				MutedStyle.Render(fmt.Sprintf("%s · %d likes · %s", p.DisplayName, p.Likes, p.ID))))
	}
	return strings.Join(cards, "\n")
}

func Stats(s *models.GlobalStats) string {
	lines := []string{
		HeaderStyle.Render("GreenMason at a glance"),
		kv("Users", strconv.Itoa(s.TotalUsers)),
		kv("Actions", strconv.Itoa(s.TotalActions)),
		kv("Pledges", strconv.Itoa(s.TotalPledges)),
		kv("Points", PointsStyle.Render(strconv.Itoa(s.TotalPoints))),
	}
	for _, action := range []string{models.ActionSort, models.ActionChat, models.ActionPledge, models.ActionQuiz, models.ActionChallenge} {
		if n, ok := s.ActionBreakdown[action]; ok {
			lines = append(lines, kv("  "+action, strconv.Itoa(n)))
		}
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

func Chat(resp *models.ChatResponse) string {
	out := resp.Reply
	if resp.RouteToPatriotAI && resp.PatriotAIReason != nil {
		out += "\n\n" + WarningStyle.Render(*resp.PatriotAIReason)
	}
	return out
}

func Error(msg string) string {
	return ErrorTextStyle.Render(msg)
}
