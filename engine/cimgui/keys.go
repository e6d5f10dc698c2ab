package cimgui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/go-theft-auto/imwin"
)

var keyTable = buildKeyTable()

func buildKeyTable() map[imwin.Key]imgui.Key {
	t := map[imwin.Key]imgui.Key{
		imwin.KeyTab:            imgui.KeyTab,
		imwin.KeyLeft:           imgui.KeyLeftArrow,
		imwin.KeyRight:          imgui.KeyRightArrow,
		imwin.KeyUp:             imgui.KeyUpArrow,
		imwin.KeyDown:           imgui.KeyDownArrow,
		imwin.KeyPageUp:         imgui.KeyPageUp,
		imwin.KeyPageDown:       imgui.KeyPageDown,
		imwin.KeyHome:           imgui.KeyHome,
		imwin.KeyEnd:            imgui.KeyEnd,
		imwin.KeyInsert:         imgui.KeyInsert,
		imwin.KeyDelete:         imgui.KeyDelete,
		imwin.KeyBackspace:      imgui.KeyBackspace,
		imwin.KeySpace:          imgui.KeySpace,
		imwin.KeyEnter:          imgui.KeyEnter,
		imwin.KeyEscape:         imgui.KeyEscape,
		imwin.KeyLeftCtrl:       imgui.KeyLeftCtrl,
		imwin.KeyLeftShift:      imgui.KeyLeftShift,
		imwin.KeyLeftAlt:        imgui.KeyLeftAlt,
		imwin.KeyLeftSuper:      imgui.KeyLeftSuper,
		imwin.KeyRightCtrl:      imgui.KeyRightCtrl,
		imwin.KeyRightShift:     imgui.KeyRightShift,
		imwin.KeyRightAlt:       imgui.KeyRightAlt,
		imwin.KeyRightSuper:     imgui.KeyRightSuper,
		imwin.KeyMenu:           imgui.KeyMenu,
		imwin.KeyApostrophe:     imgui.KeyApostrophe,
		imwin.KeyComma:          imgui.KeyComma,
		imwin.KeyMinus:          imgui.KeyMinus,
		imwin.KeyPeriod:         imgui.KeyPeriod,
		imwin.KeySlash:          imgui.KeySlash,
		imwin.KeySemicolon:      imgui.KeySemicolon,
		imwin.KeyEqual:          imgui.KeyEqual,
		imwin.KeyLeftBracket:    imgui.KeyLeftBracket,
		imwin.KeyBackslash:      imgui.KeyBackslash,
		imwin.KeyRightBracket:   imgui.KeyRightBracket,
		imwin.KeyGraveAccent:    imgui.KeyGraveAccent,
		imwin.KeyCapsLock:       imgui.KeyCapsLock,
		imwin.KeyScrollLock:     imgui.KeyScrollLock,
		imwin.KeyNumLock:        imgui.KeyNumLock,
		imwin.KeyPrintScreen:    imgui.KeyPrintScreen,
		imwin.KeyPause:          imgui.KeyPause,
		imwin.KeyKeypadDecimal:  imgui.KeyKeypadDecimal,
		imwin.KeyKeypadDivide:   imgui.KeyKeypadDivide,
		imwin.KeyKeypadMultiply: imgui.KeyKeypadMultiply,
		imwin.KeyKeypadSubtract: imgui.KeyKeypadSubtract,
		imwin.KeyKeypadAdd:      imgui.KeyKeypadAdd,
		imwin.KeyKeypadEnter:    imgui.KeyKeypadEnter,
		imwin.KeyKeypadEqual:    imgui.KeyKeypadEqual,
		imwin.KeyModCtrl:        imgui.ModCtrl,
		imwin.KeyModShift:       imgui.ModShift,
		imwin.KeyModAlt:         imgui.ModAlt,
		imwin.KeyModSuper:       imgui.ModSuper,
	}

	// Digit, letter, function and keypad keys are contiguous in both enums.
	for i := 0; i < 10; i++ {
		t[imwin.Key0+imwin.Key(i)] = imgui.Key0 + imgui.Key(i)
		t[imwin.KeyKeypad0+imwin.Key(i)] = imgui.KeyKeypad0 + imgui.Key(i)
	}
	for i := 0; i < 26; i++ {
		t[imwin.KeyA+imwin.Key(i)] = imgui.KeyA + imgui.Key(i)
	}
	for i := 0; i < 12; i++ {
		t[imwin.KeyF1+imwin.Key(i)] = imgui.KeyF1 + imgui.Key(i)
	}
	return t
}

var colorTable = [imwin.ColorCount]imgui.Col{
	imwin.ColorText:                 imgui.ColText,
	imwin.ColorTextDisabled:         imgui.ColTextDisabled,
	imwin.ColorWindowBg:             imgui.ColWindowBg,
	imwin.ColorChildBg:              imgui.ColChildBg,
	imwin.ColorPopupBg:              imgui.ColPopupBg,
	imwin.ColorBorder:               imgui.ColBorder,
	imwin.ColorBorderShadow:         imgui.ColBorderShadow,
	imwin.ColorFrameBg:              imgui.ColFrameBg,
	imwin.ColorFrameBgHovered:       imgui.ColFrameBgHovered,
	imwin.ColorFrameBgActive:        imgui.ColFrameBgActive,
	imwin.ColorTitleBg:              imgui.ColTitleBg,
	imwin.ColorTitleBgActive:        imgui.ColTitleBgActive,
	imwin.ColorTitleBgCollapsed:     imgui.ColTitleBgCollapsed,
	imwin.ColorMenuBarBg:            imgui.ColMenuBarBg,
	imwin.ColorScrollbarBg:          imgui.ColScrollbarBg,
	imwin.ColorScrollbarGrab:        imgui.ColScrollbarGrab,
	imwin.ColorScrollbarGrabHovered: imgui.ColScrollbarGrabHovered,
	imwin.ColorScrollbarGrabActive:  imgui.ColScrollbarGrabActive,
	imwin.ColorCheckMark:            imgui.ColCheckMark,
	imwin.ColorSliderGrab:           imgui.ColSliderGrab,
	imwin.ColorSliderGrabActive:     imgui.ColSliderGrabActive,
	imwin.ColorButton:               imgui.ColButton,
	imwin.ColorButtonHovered:        imgui.ColButtonHovered,
	imwin.ColorButtonActive:         imgui.ColButtonActive,
	imwin.ColorHeader:               imgui.ColHeader,
	imwin.ColorHeaderHovered:        imgui.ColHeaderHovered,
	imwin.ColorHeaderActive:         imgui.ColHeaderActive,
	imwin.ColorSeparator:            imgui.ColSeparator,
	imwin.ColorSeparatorHovered:     imgui.ColSeparatorHovered,
	imwin.ColorSeparatorActive:      imgui.ColSeparatorActive,
	imwin.ColorResizeGrip:           imgui.ColResizeGrip,
	imwin.ColorResizeGripHovered:    imgui.ColResizeGripHovered,
	imwin.ColorResizeGripActive:     imgui.ColResizeGripActive,
	imwin.ColorPlotLines:            imgui.ColPlotLines,
	imwin.ColorPlotLinesHovered:     imgui.ColPlotLinesHovered,
	imwin.ColorPlotHistogram:        imgui.ColPlotHistogram,
	imwin.ColorPlotHistogramHovered: imgui.ColPlotHistogramHovered,
	imwin.ColorTableHeaderBg:        imgui.ColTableHeaderBg,
	imwin.ColorTableBorderStrong:    imgui.ColTableBorderStrong,
	imwin.ColorTableBorderLight:     imgui.ColTableBorderLight,
	imwin.ColorTableRowBg:           imgui.ColTableRowBg,
	imwin.ColorTableRowBgAlt:        imgui.ColTableRowBgAlt,
	imwin.ColorTextSelectedBg:       imgui.ColTextSelectedBg,
	imwin.ColorDragDropTarget:       imgui.ColDragDropTarget,
	imwin.ColorModalWindowDimBg:     imgui.ColModalWindowDimBg,
}
