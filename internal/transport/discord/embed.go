package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/heartmarshall/watchlist-backend/internal/domain"
	"github.com/heartmarshall/watchlist-backend/internal/report"
)

// blank fills embed fields that only carry a name.
const blank = "\u200b"

// RenderEmbed turns a report into a Discord embed.
func RenderEmbed(r *domain.Report) *discordgo.MessageEmbed {
	title := fmt.Sprintf("%s  `%s`", r.Icon, r.Title)
	if r.Headline != nil {
		title += fmt.Sprintf("\n\n__%s:__  `%s`\n", r.Headline.Label, r.Headline.Value)
	}

	e := &discordgo.MessageEmbed{
		Title:  title,
		Color:  r.Color,
		Footer: &discordgo.MessageEmbedFooter{Text: r.Footer},
	}
	if !r.Timestamp.IsZero() {
		e.Timestamp = r.Timestamp.UTC().Format(time.RFC3339)
	}
	if r.AvatarURL != "" {
		e.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: r.AvatarURL}
	}
	if r.Author != "" {
		e.Author = &discordgo.MessageEmbedAuthor{Name: r.Author, IconURL: r.AvatarURL}
	}

	for _, sec := range r.Sections {
		e.Fields = append(e.Fields, sectionFields(sec)...)
	}
	return e
}

func sectionFields(sec domain.Section) []*discordgo.MessageEmbedField {
	if sec.Spacer {
		return []*discordgo.MessageEmbedField{{Name: "** **", Value: blank}}
	}

	out := make([]*discordgo.MessageEmbedField, 0, len(sec.Fields))
	for i, f := range sec.Fields {
		if !f.Inline {
			out = append(out, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("**__%s:__ `%s`**", f.Name, f.Value),
				Value: blank,
			})
			continue
		}

		name := "__" + f.Name + "__"
		if i < len(sec.Fields)-1 {
			name += "   "
		}
		value := f.Value
		if f.Name != report.LabelDisplayName {
			value = "`" + value + "`"
		}
		out = append(out, &discordgo.MessageEmbedField{Name: name, Value: value, Inline: true})
	}
	return out
}
